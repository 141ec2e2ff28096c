package goaty

import "github.com/vovakirdan/goaty-loaty/internal/core"

// Snapshot is a comparable copy of the simulation state.
// Two games fed the same seed and inputs produce equal snapshots on every tick.
type Snapshot struct {
	Tick        uint64
	Mode        core.Mode
	Score       int
	Coins       int
	Elapsed     float64
	Player      Player
	Obstacles   []Obstacle
	LiveCoins   []Coin
	BackgroundX int
}

// Snapshot returns a copy of the current state. The slices are not shared with the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Mode:        g.mode,
		Score:       g.score,
		Coins:       g.coinsCollected,
		Elapsed:     g.elapsed,
		Player:      g.player,
		Obstacles:   append([]Obstacle(nil), g.obstacles...),
		LiveCoins:   append([]Coin(nil), g.coins...),
		BackgroundX: g.bgX,
	}
}
