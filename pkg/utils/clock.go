package utils

import "time"

// Clock is the wall-clock source. Enemy spawning, health regeneration and tap
// detection read it; everything else advances on accumulated frame deltas.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to. Headless runs and
// tests use it to drive wall-clock behavior deterministically.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// AdvanceMs moves the clock forward by ms milliseconds.
func (c *ManualClock) AdvanceMs(ms float64) {
	c.Advance(time.Duration(ms * float64(time.Millisecond)))
}
