package frame

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Clock is the monotonic elapsed-time source read once per tick.
type Clock interface {
	// Elapsed returns seconds since the clock was created or last reset.
	Elapsed() float64
	// Reset restarts the clock at zero. Only called on scene remount.
	Reset()
}

// SDLClock reads SDL's high-resolution performance counter.
// SDL must be initialised before it is created.
type SDLClock struct {
	start uint64
	freq  float64
}

// NewSDLClock creates a clock started now.
func NewSDLClock() *SDLClock {
	return &SDLClock{
		start: sdl.GetPerformanceCounter(),
		freq:  float64(sdl.GetPerformanceFrequency()),
	}
}

// Elapsed returns seconds since start.
func (c *SDLClock) Elapsed() float64 {
	return float64(sdl.GetPerformanceCounter()-c.start) / c.freq
}

// Reset restarts the clock at zero.
func (c *SDLClock) Reset() {
	c.start = sdl.GetPerformanceCounter()
}

// ManualClock is a clock driven by hand, for tests and deterministic replays.
type ManualClock struct {
	now float64
}

// Elapsed returns the current manual time.
func (c *ManualClock) Elapsed() float64 {
	return c.now
}

// Reset rewinds to zero.
func (c *ManualClock) Reset() {
	c.now = 0
}

// Set jumps to t seconds.
func (c *ManualClock) Set(t float64) {
	c.now = t
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.now += dt
}
