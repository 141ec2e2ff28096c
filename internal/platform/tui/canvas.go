package tui

import (
	"math"
	"strings"

	"github.com/vovakirdan/goaty-loaty/internal/core"
)

// Cells used for sprites.
const (
	goatCell   = '█'
	cactusCell = '▓'
	coinCell   = '●'
	groundCell = '▀'
	tuftCell   = '▲'

	tuftSpacing = 100 // World pixels between ground tufts
)

// ScreenCanvas projects world pixels onto a cell grid.
type ScreenCanvas struct {
	screen  *core.Screen
	worldW  float64
	worldH  float64
	groundY float64 // World y of the ground surface
}

// NewScreenCanvas creates a canvas drawing onto screen. The world is scaled to fit it.
func NewScreenCanvas(screen *core.Screen, worldW, worldH, groundY float64) *ScreenCanvas {
	return &ScreenCanvas{
		screen:  screen,
		worldW:  worldW,
		worldH:  worldH,
		groundY: groundY,
	}
}

// col maps a world x to a column.
func (c *ScreenCanvas) col(x float64) int {
	return int(math.Floor(x * float64(c.screen.Width()) / c.worldW))
}

// row maps a world y to a row.
func (c *ScreenCanvas) row(y float64) int {
	return int(math.Floor(y * float64(c.screen.Height()) / c.worldH))
}

// cellRect maps a world box to a cell rectangle at least one cell in size.
func (c *ScreenCanvas) cellRect(b core.Box) core.Rect {
	x, y := c.col(b.X), c.row(b.Y)
	w := max(1, c.col(b.Right())-x)
	h := max(1, c.row(b.Bottom())-y)
	return core.NewRect(x, y, w, h)
}

// Clear blanks the grid. Terminal cells only carry a foreground color.
func (c *ScreenCanvas) Clear(core.Color) {
	c.screen.Clear()
}

// DrawSprite draws a sprite as a block of colored cells.
// Sprites entirely outside the grid are skipped.
func (c *ScreenCanvas) DrawSprite(s core.Sprite, at core.Box) {
	r := c.cellRect(at)
	if !r.Intersects(core.NewRect(0, 0, c.screen.Width(), c.screen.Height())) {
		return
	}

	switch s {
	case core.SpriteBackground:
		c.drawBackground(at, r)
	case core.SpritePlayer:
		c.screen.DrawRect(r, core.Cell{Rune: goatCell, Color: core.ColorWhite})
	case core.SpriteObstacle:
		c.screen.DrawRect(r, core.Cell{Rune: cactusCell, Color: core.ColorBrightGreen})
	case core.SpriteCoin:
		c.screen.DrawRect(r, core.Cell{Rune: coinCell, Color: core.ColorGold})
	}
}

// drawBackground clears the tile area and draws the ground with tufts
// at fixed world spacing so the scroll is visible.
func (c *ScreenCanvas) drawBackground(at core.Box, r core.Rect) {
	c.screen.DrawRect(r, core.Cell{Rune: ' '})

	ground := c.row(c.groundY)
	c.screen.DrawHLine(r.X, ground, r.W, core.Cell{Rune: groundCell, Color: core.ColorBrown})
	for x := at.X; x < at.Right(); x += tuftSpacing {
		c.screen.SetCell(c.col(x), ground-1, core.Cell{Rune: tuftCell, Color: core.ColorGreen})
	}
}

// DrawText writes a line of text. Large text is letter-spaced.
func (c *ScreenCanvas) DrawText(t core.Text) {
	content := t.Content
	if t.Size == core.TextLarge {
		content = spaced(content)
	}

	x, y := c.col(t.X), c.row(t.Y)
	if t.Centered {
		x -= len([]rune(content)) / 2
	}
	c.screen.DrawTextColor(x, y, content, t.Color)
}

// spaced puts a space between letters: "Wasted" becomes "W a s t e d".
func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
