package config

import "github.com/vovakirdan/goaty-loaty/internal/core"

// SpeedRamp linearly raises the player's speed over a fixed duration.
type SpeedRamp struct {
	initial  float64
	max      float64
	duration float64
}

// NewSpeedRamp creates a ramp from the physics configuration.
func NewSpeedRamp(cfg PhysicsConfig) SpeedRamp {
	return SpeedRamp{
		initial:  cfg.InitialSpeed,
		max:      cfg.MaxSpeed,
		duration: cfg.RampSeconds,
	}
}

// Progress returns how far along the ramp elapsed is, in [0, 1].
func (r SpeedRamp) Progress(elapsed float64) float64 {
	if r.duration <= 0 {
		return 1 // Prevent division by zero: no ramp means full speed
	}
	return core.ClampF(elapsed/r.duration, 0, 1)
}

// At returns the speed after elapsed seconds.
// It never exceeds the maximum and stops rising once the ramp completes.
func (r SpeedRamp) At(elapsed float64) float64 {
	if elapsed >= r.duration {
		return r.max
	}
	return r.initial + (r.max-r.initial)*r.Progress(elapsed)
}
