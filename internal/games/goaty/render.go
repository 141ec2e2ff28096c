package goaty

import (
	"fmt"

	"github.com/vovakirdan/goaty-loaty/internal/core"
)

// HUD layout in world pixels.
const (
	hudY          = 10
	hudCoinsX     = 20
	hudTimeOffset = 50  // Time label sits this far left of the center
	hudScoreInset = 150 // Score label sits this far from the right edge
)

// Render draws the current mode into dst.
func (g *Game) Render(dst core.Canvas) {
	switch g.mode {
	case core.ModeMenu:
		g.drawMenu(dst)
	case core.ModeRunning:
		g.drawRound(dst)
	case core.ModeWon:
		g.drawResult(dst, "You Won!", core.ColorGreen, "Press Enter to Play Again")
	case core.ModeLost:
		g.drawResult(dst, "Wasted", core.ColorRed, "Press Enter to Try Again")
	}
}

func (g *Game) drawMenu(dst core.Canvas) {
	w, h := g.screenSize()
	dst.Clear(core.ColorBlack)
	dst.DrawText(core.Text{
		X: w / 2, Y: h/2 - 100,
		Content:  g.Title(),
		Color:    core.ColorWhite,
		Size:     core.TextLarge,
		Centered: true,
	})
	dst.DrawText(core.Text{
		X: w / 2, Y: h / 2,
		Content:  "Press Enter to Start",
		Color:    core.ColorWhite,
		Centered: true,
	})
}

func (g *Game) drawRound(dst core.Canvas) {
	w, h := g.screenSize()
	bg := float64(g.bgX)

	// Two copies side by side give a seamless scroll.
	dst.DrawSprite(core.SpriteBackground, core.NewBox(bg, 0, w, h))
	dst.DrawSprite(core.SpriteBackground, core.NewBox(bg+w, 0, w, h))

	dst.DrawSprite(core.SpritePlayer, g.player.Box())
	for _, o := range g.obstacles {
		dst.DrawSprite(o.Sprite(), o.Box())
	}
	for _, c := range g.coins {
		dst.DrawSprite(c.Sprite(), c.Box())
	}

	dst.DrawText(core.Text{
		X: hudCoinsX, Y: hudY,
		Content: fmt.Sprintf("Coins: %d", g.coinsCollected),
		Color:   core.ColorGold,
	})
	dst.DrawText(core.Text{
		X: w/2 - hudTimeOffset, Y: hudY,
		Content: fmt.Sprintf("Time: %ds", g.Remaining()),
		Color:   core.ColorWhite,
	})
	dst.DrawText(core.Text{
		X: w - hudScoreInset, Y: hudY,
		Content: fmt.Sprintf("Score: %d", g.score),
		Color:   core.ColorWhite,
	})
}

// drawResult draws the end-of-round screen with the final counters.
func (g *Game) drawResult(dst core.Canvas, title string, titleColor core.Color, prompt string) {
	w, h := g.screenSize()
	dst.Clear(core.ColorBlack)

	lines := []core.Text{
		{Y: h/2 - 100, Content: title, Color: titleColor, Size: core.TextLarge},
		{Y: h/2 - 50, Content: fmt.Sprintf("Score: %d", g.score), Color: core.ColorWhite},
		{Y: h / 2, Content: fmt.Sprintf("Coins Collected: %d", g.coinsCollected), Color: core.ColorGold},
		{Y: h/2 + 50, Content: prompt, Color: core.ColorWhite},
	}
	for _, t := range lines {
		t.X = w / 2
		t.Centered = true
		dst.DrawText(t)
	}
}

func (g *Game) screenSize() (float64, float64) {
	return float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height)
}
