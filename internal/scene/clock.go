package scene

import "time"

// DefaultMaxDelta caps a single frame step after a stall (window drag,
// debugger pause).
const DefaultMaxDelta = 250 * time.Millisecond

// FrameClock measures the time between frames.
type FrameClock struct {
	MaxDelta time.Duration

	now      func() time.Time
	last     time.Time
	started  bool
	frames   int
	fpsStart time.Time
}

// NewFrameClock creates a clock reading the wall clock.
func NewFrameClock() *FrameClock {
	return newFrameClock(time.Now)
}

func newFrameClock(now func() time.Time) *FrameClock {
	return &FrameClock{MaxDelta: DefaultMaxDelta, now: now}
}

// Tick returns the seconds elapsed since the previous Tick. The first call
// returns 0.
func (c *FrameClock) Tick() float32 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		c.fpsStart = t
		return 0
	}

	d := t.Sub(c.last)
	c.last = t
	c.frames++
	if d < 0 {
		d = 0
	}
	if c.MaxDelta > 0 && d > c.MaxDelta {
		d = c.MaxDelta
	}
	return float32(d.Seconds())
}

// FPS reports the frame rate over the current window once at least a second
// has passed, then starts a new window.
func (c *FrameClock) FPS() (fps float64, ok bool) {
	elapsed := c.last.Sub(c.fpsStart)
	if !c.started || elapsed < time.Second {
		return 0, false
	}
	fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.fpsStart = c.last
	return fps, true
}
