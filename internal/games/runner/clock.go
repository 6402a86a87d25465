package runner

import "math"

// SimClock accumulates simulation time from per-frame deltas.
// Time only moves while the machine is running, so a frozen run
// also freezes any jump in flight.
type SimClock struct {
	now   float64 // seconds since the run started
	ticks uint64
}

// Advance moves the clock forward by dt seconds and returns the delta
// actually applied. Negative or non-finite deltas are contract violations.
func (c *SimClock) Advance(dt float64) float64 {
	if !invariant(dt >= 0 && !math.IsInf(dt, 0), "tick delta must be finite and non-negative, got %v", dt) {
		dt = 0
	}
	c.now += dt
	c.ticks++
	return dt
}

// Now returns the simulation time in seconds.
func (c *SimClock) Now() float64 {
	return c.now
}

// Ticks returns the number of Advance calls since the last Reset.
func (c *SimClock) Ticks() uint64 {
	return c.ticks
}

// Reset rewinds the clock to zero.
func (c *SimClock) Reset() {
	c.now = 0
	c.ticks = 0
}
