package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goaty-loaty/internal/audio"
	"github.com/vovakirdan/goaty-loaty/internal/core"
	"github.com/vovakirdan/goaty-loaty/internal/games/goaty"
)

// footerHeight is the number of rows reserved below the playfield.
const footerHeight = 1

// Options configures the terminal front end.
type Options struct {
	Runtime core.RuntimeConfig
	Audio   core.AudioSink
	Logger  *log.Logger

	// ScreenshotDir is where Ctrl+S writes text screenshots.
	// Empty means ~/.goaty/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that runs the game.
type Model struct {
	game          *goaty.Game
	screen        *core.Screen
	canvas        *ScreenCanvas
	audio         core.AudioSink
	logger        *log.Logger
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	input         *heldInput
	mode          core.Mode
	screenshotDir string
	quitting      bool
}

// NewModel creates a Bubble Tea model for the game.
func NewModel(game *goaty.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	sink := opts.Audio
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world := game.Config()
	screen := core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerHeight))

	return Model{
		game:   game,
		screen: screen,
		canvas: NewScreenCanvas(screen,
			float64(world.Screen.Width), float64(world.Screen.Height),
			world.GroundY()+world.Player.Size),
		audio:         sink,
		logger:        logger,
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		input:         newHeldInput(cfg.TickRate),
		mode:          game.State().Mode,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit also goes through
// the game so it is honored between ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if a := m.keys.MapKey(msg); a != core.ActionNone {
		m.input.Press(a)
	}
	return m, nil
}

// handleResize refits the playfield to the terminal. The world keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Next())
	audio.Dispatch(m.audio, result.Events)

	if result.Quit {
		m.logger.Info("quit", "mode", result.State.Mode)
		m.quitting = true
		return m, tea.Quit
	}

	if result.State.Mode != m.mode {
		m.logTransition(result.State)
		m.mode = result.State.Mode
		if m.mode != core.ModeRunning {
			m.input.Release()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(st core.GameState) {
	switch st.Mode {
	case core.ModeRunning:
		m.logger.Info("round started")
	case core.ModeWon, core.ModeLost:
		m.logger.Info("round over",
			"outcome", st.Mode,
			"score", st.Score,
			"coins", st.Coins,
			"elapsed", fmt.Sprintf("%.2fs", st.Elapsed),
		)
	default:
		m.logger.Debug("mode changed", "mode", st.Mode)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".goaty", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("goaty_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the playfield and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *goaty.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
