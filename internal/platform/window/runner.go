// Package window runs the game in a desktop window with ebiten.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/goaty-loaty/internal/audio"
	"github.com/vovakirdan/goaty-loaty/internal/core"
	"github.com/vovakirdan/goaty-loaty/internal/games/goaty"
)

// Options configures the window front end.
type Options struct {
	TickRate int
	Bundle   *Bundle
	Audio    core.AudioSink
	Logger   *log.Logger
}

// Runner adapts the game to ebiten.Game.
type Runner struct {
	game   *goaty.Game
	canvas *Canvas
	audio  core.AudioSink
	logger *log.Logger
	mode   core.Mode
	width  int
	height int
}

// NewRunner creates a runner for the game.
func NewRunner(game *goaty.Game, opts Options) *Runner {
	bundle := opts.Bundle
	if bundle == nil {
		bundle = PlaceholderBundle()
	}
	sink := opts.Audio
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := game.Config()
	return &Runner{
		game:   game,
		canvas: NewCanvas(bundle, cfg.GroundY()+cfg.Player.Size),
		audio:  sink,
		logger: logger,
		mode:   game.State().Mode,
		width:  cfg.Screen.Width,
		height: cfg.Screen.Height,
	}
}

// Update runs one simulation tick.
func (r *Runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	return r.step(pollInput(ebiten.IsKeyPressed))
}

// step advances the game with a sampled frame. Returns ebiten.Termination on quit.
func (r *Runner) step(in core.InputFrame) error {
	result := r.game.Step(in)
	audio.Dispatch(r.audio, result.Events)

	if result.Quit {
		r.logger.Info("quit", "mode", result.State.Mode)
		return ebiten.Termination
	}

	if st := result.State; st.Mode != r.mode {
		r.mode = st.Mode
		switch {
		case st.Mode == core.ModeRunning:
			r.logger.Info("round started")
		case st.Mode.Finished():
			r.logger.Info("round over",
				"outcome", st.Mode,
				"score", st.Score,
				"coins", st.Coins,
				"elapsed", fmt.Sprintf("%.2fs", st.Elapsed),
			)
		}
	}
	return nil
}

// Draw renders the current frame.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.canvas.SetTarget(screen)
	r.game.Render(r.canvas)
}

// Layout keeps the logical screen at the world size; ebiten scales it to the window.
func (r *Runner) Layout(int, int) (int, int) {
	return r.width, r.height
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *goaty.Game, opts Options) error {
	r := NewRunner(game, opts)

	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	ebiten.SetWindowSize(r.width, r.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// RunGame returns nil when Update returns ebiten.Termination.
	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
