package input

import "github.com/veandco/go-sdl2/sdl"

// Drag accumulates pointer motion while the left button is held, and wheel
// steps, over one frame.
type Drag struct {
	active bool

	DeltaX, DeltaY float32
	Wheel          float32
}

// Reset clears the per-frame deltas. The held state carries over.
func (d *Drag) Reset() {
	d.DeltaX, d.DeltaY = 0, 0
	d.Wheel = 0
}

// Active reports whether the left button is held.
func (d *Drag) Active() bool {
	return d.active
}

// Handle folds one event into the drag state.
func (d *Drag) Handle(e Event) {
	switch e.Type {
	case EventMouseDown:
		if e.Button == uint8(sdl.BUTTON_LEFT) {
			d.active = true
		}
	case EventMouseUp:
		if e.Button == uint8(sdl.BUTTON_LEFT) {
			d.active = false
		}
	case EventMouseMove:
		if d.active {
			d.DeltaX += e.DeltaX
			d.DeltaY += e.DeltaY
		}
	case EventMouseWheel:
		d.Wheel += e.DeltaY
	}
}
