package goaty

import (
	"github.com/vovakirdan/goaty-loaty/internal/config"
	"github.com/vovakirdan/goaty-loaty/internal/core"
)

// Player is the goat. Y grows downward; GroundY is the resting height.
type Player struct {
	X, Y     float64
	VelY     float64 // Vertical velocity, negative = up
	Speed    float64 // Horizontal speed in pixels per tick
	Size     float64
	Jumping  bool
	OnGround bool

	groundY float64
	physics config.PhysicsConfig
	ramp    config.SpeedRamp
}

// NewPlayer creates a player standing at the configured start position.
func NewPlayer(cfg config.GoatyConfig) Player {
	return Player{
		X:        cfg.Player.StartX,
		Y:        cfg.GroundY(),
		Speed:    cfg.Physics.InitialSpeed,
		Size:     cfg.Player.Size,
		OnGround: true,
		groundY:  cfg.GroundY(),
		physics:  cfg.Physics,
		ramp:     config.NewSpeedRamp(cfg.Physics),
	}
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// Accelerate sets the horizontal speed from the ramp for the given elapsed time.
func (p *Player) Accelerate(elapsed float64) {
	p.Speed = p.ramp.At(elapsed)
}

// Move shifts the player horizontally and keeps it on screen.
func (p *Player) Move(left, right bool, screenW float64) {
	if left {
		p.X -= p.Speed
	}
	if right {
		p.X += p.Speed
	}
	p.X = core.ClampF(p.X, 0, screenW-p.Size)
}

// Jump starts a jump if the player is on the ground.
// Returns true when a jump was started.
func (p *Player) Jump(pressed bool) bool {
	if !pressed || !p.OnGround {
		return false
	}
	p.VelY = p.physics.JumpVelocity
	p.Jumping = true
	p.OnGround = false
	return true
}

// ApplyGravity integrates one tick of vertical motion and lands on the ground line.
func (p *Player) ApplyGravity() {
	p.VelY += p.physics.Gravity
	p.Y += p.VelY

	if p.Y >= p.groundY {
		p.Y = p.groundY
		p.VelY = 0
		p.OnGround = true
		p.Jumping = false
	}
}

// Update runs one tick of player kinematics: move, jump, gravity.
// Returns true when a jump was started this tick.
func (p *Player) Update(in core.InputFrame, screenW float64) bool {
	p.Move(in.Has(core.ActionLeft), in.Has(core.ActionRight), screenW)
	jumped := p.Jump(in.Has(core.ActionJump))
	p.ApplyGravity()
	return jumped
}
