package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/goaty-loaty/internal/core"
)

func runeAt(s *core.Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func rowText(s *core.Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

// 80x20 cells over an 800x400 world: 10x20 pixels per cell.
func newTestCanvas() (*ScreenCanvas, *core.Screen) {
	s := core.NewScreen(80, 20)
	return NewScreenCanvas(s, 800, 400, 350), s
}

func TestCanvasSpriteProjection(t *testing.T) {
	c, s := newTestCanvas()

	c.DrawSprite(core.SpritePlayer, core.NewBox(100, 300, 50, 50))

	for y := 15; y < 17; y++ {
		for x := 10; x < 15; x++ {
			if runeAt(s, x, y) != goatCell {
				t.Errorf("cell (%d,%d) = %q, want the goat", x, y, runeAt(s, x, y))
			}
		}
	}
	if runeAt(s, 15, 15) == goatCell || runeAt(s, 10, 17) == goatCell {
		t.Error("goat spills outside its box")
	}
}

func TestCanvasTinySpriteStillVisible(t *testing.T) {
	c, s := newTestCanvas()
	c.DrawSprite(core.SpriteCoin, core.NewBox(401, 101, 2, 2))

	if got := s.GetCell(40, 5); got.Rune != coinCell || got.Color != core.ColorGold {
		t.Errorf("cell = %+v, want a gold coin", got)
	}
}

func TestCanvasOffscreenSpriteClipped(t *testing.T) {
	c, s := newTestCanvas()
	c.DrawSprite(core.SpriteObstacle, core.NewBox(-100, 300, 50, 50))
	c.DrawSprite(core.SpriteObstacle, core.NewBox(1200, 300, 50, 50))

	if strings.ContainsRune(s.String(), cactusCell) {
		t.Error("offscreen obstacles should not be drawn")
	}
}

func TestCanvasBackground(t *testing.T) {
	c, s := newTestCanvas()
	s.FillCell(core.Cell{Rune: 'x'})

	c.DrawSprite(core.SpriteBackground, core.NewBox(-100, 0, 800, 400))

	if got := rowText(s, 17); got != strings.Repeat(string(groundCell), 70)+strings.Repeat("x", 10) {
		t.Errorf("ground row = %q", got)
	}
	if runeAt(s, 0, 16) != tuftCell {
		t.Errorf("expected a tuft at column 0, got %q", runeAt(s, 0, 16))
	}
	if runeAt(s, 0, 0) != ' ' {
		t.Error("background should clear the area it covers")
	}
}

func TestCanvasText(t *testing.T) {
	c, s := newTestCanvas()

	c.DrawText(core.Text{X: 20, Y: 10, Content: "Coins: 3", Color: core.ColorGold})
	if got := rowText(s, 0)[2:10]; got != "Coins: 3" {
		t.Errorf("HUD text = %q", got)
	}
	if s.GetCell(2, 0).Color != core.ColorGold {
		t.Error("text color lost")
	}

	c.DrawText(core.Text{X: 400, Y: 200, Content: "Wasted", Size: core.TextLarge, Centered: true})
	if row := rowText(s, 10); !strings.Contains(row, "W a s t e d") {
		t.Errorf("large centered text row = %q", row)
	} else if idx := strings.Index(row, "W"); idx != 40-len("W a s t e d")/2 {
		t.Errorf("large text starts at %d", idx)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorGold)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("want 2 lines, got %q", out)
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("rendered output lost text: %q", out)
	}
}
