package core

import "time"

// Clock reports elapsed real time in seconds since an arbitrary reference.
type Clock interface {
	Seconds() float64
}

// WallClock measures time since its creation.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a wall clock starting now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Seconds returns the time since the clock was created.
func (c *WallClock) Seconds() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is a clock advanced explicitly, for tests and replays.
type ManualClock struct {
	Now float64
}

// Seconds returns the current manual time.
func (c *ManualClock) Seconds() float64 {
	return c.Now
}

// Advance moves the clock forward by d seconds.
func (c *ManualClock) Advance(d float64) {
	c.Now += d
}
