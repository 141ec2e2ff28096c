// Package goaty implements Goaty Loaty, a side-scrolling runner: the goat jumps
// over cacti, picks up coins and has to survive until the timer runs out.
//
// The package is pure simulation. Front ends feed it one InputFrame per tick,
// route the returned audio events and hand it a Canvas to draw on.
package goaty

import (
	"github.com/vovakirdan/goaty-loaty/internal/config"
	"github.com/vovakirdan/goaty-loaty/internal/core"
)

// Game owns the player, the live obstacles and coins, and the session counters.
type Game struct {
	cfg      config.GoatyConfig
	tickRate int
	spawner  *Spawner
	clock    core.Clock // nil means elapsed time advances by a fixed step per tick

	mode      core.Mode
	player    Player
	obstacles []Obstacle
	coins     []Coin

	score          int
	coinsCollected int
	elapsed        float64 // Seconds since the round started
	startedAt      float64 // Clock reading when the round started
	roundTicks     int     // Running ticks since the round started
	tick           uint64  // Ticks since the game was created or reset
	bgX            int     // Background scroll offset, in (-ScreenW, 0]

	confirmHeld bool // Confirm state on the previous tick, for edge detection
	events      []core.Event
}

// Option customizes a Game.
type Option func(*Game)

// WithClock derives elapsed time from a real clock instead of counting ticks.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// New creates a game in the menu mode.
func New(cfg config.GoatyConfig, rt core.RuntimeConfig, opts ...Option) *Game {
	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = cfg.Session.TickRate
	}

	g := &Game{
		cfg:      cfg,
		tickRate: tickRate,
		spawner:  NewSpawner(rt.Seed, cfg),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(rt.Seed)
	return g
}

// Reset returns to the menu and reseeds the spawner.
func (g *Game) Reset(seed int64) {
	g.spawner.Reset(seed)
	g.mode = core.ModeMenu
	g.player = NewPlayer(g.cfg)
	g.obstacles = nil
	g.coins = nil
	g.score = 0
	g.coinsCollected = 0
	g.elapsed = 0
	g.roundTicks = 0
	g.tick = 0
	g.bgX = 0
	g.confirmHeld = false
}

// Title returns the display name of the game.
func (g *Game) Title() string {
	return "Goaty Loaty"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.GoatyConfig {
	return g.cfg
}

// Step advances the game by one tick.
// Quit is honored in every mode and leaves the state untouched.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	// Confirm only counts on the tick it is first pressed, so a held key
	// cannot skip straight through the result screen and the menu.
	confirmed := in.Has(core.ActionConfirm) && !g.confirmHeld
	g.confirmHeld = in.Has(core.ActionConfirm)

	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	g.tick++

	switch g.mode {
	case core.ModeMenu:
		if confirmed {
			g.startRound()
		}
	case core.ModeRunning:
		g.stepRunning(in)
	case core.ModeWon, core.ModeLost:
		if confirmed {
			g.mode = core.ModeMenu
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// startRound resets the session and spawns the first batch.
func (g *Game) startRound() {
	g.mode = core.ModeRunning
	g.player = NewPlayer(g.cfg)
	g.obstacles, g.coins = g.spawner.GenerateBatch()
	g.score = 0
	g.coinsCollected = 0
	g.elapsed = 0
	g.roundTicks = 0
	g.bgX = 0
	if g.clock != nil {
		g.startedAt = g.clock.Seconds()
	}
	g.emit(core.Event{Kind: core.EventMusicStart})
}

// stepRunning runs one tick of the round in a fixed order: clock, player,
// scrolling entities, refill, collisions (loss before coins), win check, background.
func (g *Game) stepRunning(in core.InputFrame) {
	g.advanceClock()

	g.player.Accelerate(g.elapsed)
	if g.player.Update(in, float64(g.cfg.Screen.Width)) {
		g.emit(core.PlaySound(core.SoundJump))
	}

	g.obstacles = scroll(g.obstacles)
	g.coins = scroll(g.coins)

	if len(g.obstacles) < g.cfg.Spawner.LowWaterMark {
		obstacles, coins := g.spawner.GenerateBatch()
		g.obstacles = append(g.obstacles, obstacles...)
		g.coins = append(g.coins, coins...)
	}

	playerBox := g.player.Box()
	if hitsObstacle(playerBox, g.obstacles) {
		g.finish(core.ModeLost)
		return
	}

	var collected int
	g.coins, collected = collectCoins(playerBox, g.coins)
	for range collected {
		g.coinsCollected++
		g.score += g.cfg.Coins.Points
		g.emit(core.PlaySound(core.SoundCoin))
	}

	if g.elapsed >= g.cfg.Session.WinSeconds {
		g.finish(core.ModeWon)
		return
	}

	g.bgX -= int(g.player.Speed)
	if g.bgX <= -g.cfg.Screen.Width {
		g.bgX = 0
	}
}

// advanceClock moves elapsed time forward, never backward.
func (g *Game) advanceClock() {
	g.roundTicks++
	if g.clock == nil {
		g.elapsed = float64(g.roundTicks) / float64(g.tickRate)
		return
	}
	if now := g.clock.Seconds() - g.startedAt; now > g.elapsed {
		g.elapsed = now
	}
}

// finish ends the round with the given outcome.
func (g *Game) finish(mode core.Mode) {
	g.mode = mode
	g.emit(core.Event{Kind: core.EventMusicStop})
	if mode == core.ModeWon {
		g.emit(core.PlaySound(core.SoundWin))
	} else {
		g.emit(core.PlaySound(core.SoundLose))
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// Remaining returns the whole seconds left on the round timer.
func (g *Game) Remaining() int {
	return max(0, int(g.cfg.Session.WinSeconds-g.elapsed))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:    g.mode,
		Score:   g.score,
		Coins:   g.coinsCollected,
		Elapsed: g.elapsed,
	}
}
