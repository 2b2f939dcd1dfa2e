// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX float32 // relative motion, or wheel steps
	DeltaY float32
	Button uint8
}

// Input collects the events of one frame and tracks mouse dragging.
type Input struct {
	events []Event
	drag   Drag
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to Events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.drag.Reset()

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, ev)
		i.drag.Handle(ev)
		if ev.Type == EventQuit {
			quit = true
		}
	}

	return quit
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		if e.Type == sdl.KEYDOWN {
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}
		return Event{Type: EventKeyUp, Key: e.Keysym.Scancode}, true

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DeltaX: float32(e.XRel),
			DeltaY: float32(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventMouseDown
		}
		return Event{
			Type:   t,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}, true

	case *sdl.MouseWheelEvent:
		return Event{
			Type:   EventMouseWheel,
			DeltaX: float32(e.X),
			DeltaY: float32(e.Y),
		}, true
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Drag returns the mouse drag state accumulated by the last Update.
func (i *Input) Drag() *Drag {
	return &i.drag
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
