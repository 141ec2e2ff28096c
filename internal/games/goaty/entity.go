package goaty

import (
	"github.com/vovakirdan/goaty-loaty/internal/config"
	"github.com/vovakirdan/goaty-loaty/internal/core"
)

// Entity is anything drawn and collided in world space.
type Entity interface {
	Box() core.Box
	Sprite() core.Sprite
}

// scroller is an entity that drifts left each tick and eventually leaves the screen.
type scroller[T any] interface {
	Entity
	Advanced() T
	Offscreen() bool
}

// Obstacle is a cactus sitting on the ground line.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// NewObstacle creates an obstacle at x using the configured size and scroll speed.
// Obstacles scroll at the player's initial speed, not its current one.
func NewObstacle(x float64, cfg config.GoatyConfig) Obstacle {
	return Obstacle{
		X:     x,
		Y:     cfg.ObstacleY(),
		W:     cfg.Obstacles.Width,
		H:     cfg.Obstacles.Height,
		Speed: cfg.Physics.InitialSpeed,
	}
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Sprite returns the image drawn for the obstacle.
func (o Obstacle) Sprite() core.Sprite {
	return core.SpriteObstacle
}

// Advanced returns the obstacle after one tick of drift.
func (o Obstacle) Advanced() Obstacle {
	o.X -= o.Speed
	return o
}

// Offscreen reports whether the obstacle has fully left the screen.
func (o Obstacle) Offscreen() bool {
	return o.X < -o.W
}

// Coin is a collectible floating above the ground.
type Coin struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// NewCoin creates a coin at (x, y) using the configured size and speed.
func NewCoin(x, y float64, cfg config.GoatyConfig) Coin {
	return Coin{
		X:     x,
		Y:     y,
		Size:  cfg.Coins.Size,
		Speed: cfg.Coins.Speed,
	}
}

// Box returns the coin's collision box.
func (c Coin) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.Size, c.Size)
}

// Sprite returns the image drawn for the coin.
func (c Coin) Sprite() core.Sprite {
	return core.SpriteCoin
}

// Advanced returns the coin after one tick of drift.
func (c Coin) Advanced() Coin {
	c.X -= c.Speed
	return c
}

// Offscreen reports whether the coin has fully left the screen.
func (c Coin) Offscreen() bool {
	return c.X < -c.Size
}

// scroll advances every item and returns the ones still on screen as a new slice.
func scroll[T scroller[T]](items []T) []T {
	live := make([]T, 0, len(items))
	for _, it := range items {
		it = it.Advanced()
		if !it.Offscreen() {
			live = append(live, it)
		}
	}
	return live
}
