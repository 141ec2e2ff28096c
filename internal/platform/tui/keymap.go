package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/goaty-loaty/internal/core"
)

// KeyMap defines the key bindings of the terminal front end.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Confirm    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Confirm, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// Hold windows. Terminals report presses and repeats but never releases,
// so a press keeps its action active until the window runs out. The movement
// window outlasts the usual key-repeat delay so a held key moves smoothly.
// A held Enter reuses it: repeats inside the window count as the same press.
const (
	moveHold = 550 * time.Millisecond
	jumpHold = 100 * time.Millisecond
)

// heldInput tracks actions that stay active across ticks.
type heldInput struct {
	remaining    map[core.Action]int // Ticks left per action
	moveTicks    int
	jumpTicks    int
	confirmGuard int             // Ticks until Enter counts as a new press
	once         core.InputFrame // Actions delivered on the next tick only
}

func newHeldInput(tickRate int) *heldInput {
	interval := tickInterval(tickRate)
	return &heldInput{
		remaining: make(map[core.Action]int),
		moveTicks: max(1, int(moveHold/interval)),
		jumpTicks: max(1, int(jumpHold/interval)),
		once:      core.NewInputFrame(),
	}
}

// Press records a key press or repeat.
func (h *heldInput) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
		h.remaining[a] = h.moveTicks
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
		h.remaining[a] = h.moveTicks
	case core.ActionJump:
		h.remaining[a] = h.jumpTicks
	case core.ActionConfirm:
		if h.confirmGuard == 0 {
			h.once.Set(a)
		}
		h.confirmGuard = h.moveTicks
	case core.ActionQuit:
		h.once.Set(a)
	}
}

// Next returns the input for the coming tick and ages the hold windows.
func (h *heldInput) Next() core.InputFrame {
	frame := h.once.Clone()
	h.once.Clear()
	if h.confirmGuard > 0 {
		h.confirmGuard--
	}

	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

// Release drops every held action. A held Enter stays guarded so its
// repeats cannot confirm the screen that follows.
func (h *heldInput) Release() {
	clear(h.remaining)
}
