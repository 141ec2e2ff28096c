package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/goaty-loaty/internal/core"
)

// Debug font glyph size in pixels.
const (
	glyphW = 6
	glyphH = 16

	largeTextScale = 3
	smallTextScale = 2
	maxCachedText  = 64
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {255, 255, 255, 255},
	core.ColorBlack:       {0, 0, 0, 255},
	core.ColorRed:         {255, 0, 0, 255},
	core.ColorGreen:       {0, 255, 0, 255},
	core.ColorYellow:      {255, 255, 0, 255},
	core.ColorBlue:        {0, 0, 255, 255},
	core.ColorCyan:        {0, 255, 255, 255},
	core.ColorWhite:       {255, 255, 255, 255},
	core.ColorBrightGreen: {60, 200, 60, 255},
	core.ColorGold:        {255, 215, 0, 255},
	core.ColorBrown:       {139, 90, 43, 255},
	core.ColorGray:        {128, 128, 128, 255},
	core.ColorSky:         {135, 206, 235, 255},
}

// placeholders are the fill colors of sprites without an image.
var placeholders = map[core.Sprite]core.Color{
	core.SpritePlayer:   core.ColorWhite,
	core.SpriteObstacle: core.ColorBrightGreen,
	core.SpriteCoin:     core.ColorGold,
}

// rgba maps a palette color, falling back to white.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// textWidth returns the unscaled width of a line in the debug font.
func textWidth(s string) int {
	return len([]rune(s)) * glyphW
}

// Canvas draws onto an ebiten image in world pixels. The window layout
// matches the world size so no projection is needed.
type Canvas struct {
	target  *ebiten.Image
	bundle  *Bundle
	groundY float64
	text    map[string]*ebiten.Image // Rendered lines keyed by content
}

// NewCanvas creates a canvas using the bundle's images.
func NewCanvas(bundle *Bundle, groundY float64) *Canvas {
	return &Canvas{
		bundle:  bundle,
		groundY: groundY,
		text:    make(map[string]*ebiten.Image),
	}
}

// SetTarget selects the image the next draw calls go to.
func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.target = img
}

// Clear fills the target with a solid color.
func (c *Canvas) Clear(col core.Color) {
	c.target.Fill(rgba(col))
}

// DrawSprite draws the sprite's image stretched over the box,
// or a filled rectangle when there is no image.
func (c *Canvas) DrawSprite(s core.Sprite, at core.Box) {
	if img := c.bundle.Image(s); img != nil {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(at.W/float64(w), at.H/float64(h))
		op.GeoM.Translate(at.X, at.Y)
		c.target.DrawImage(img, op)
		return
	}

	if s == core.SpriteBackground {
		c.fillRect(at.X, at.Y, at.W, at.H, core.ColorSky)
		c.fillRect(at.X, c.groundY, at.W, at.Bottom()-c.groundY, core.ColorBrown)
		return
	}
	c.fillRect(at.X, at.Y, at.W, at.H, placeholders[s])
}

func (c *Canvas) fillRect(x, y, w, h float64, col core.Color) {
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), rgba(col), false)
}

// DrawText draws a line with the debug font, scaled and tinted.
func (c *Canvas) DrawText(t core.Text) {
	if t.Content == "" {
		return
	}

	scale := float64(smallTextScale)
	if t.Size == core.TextLarge {
		scale = largeTextScale
	}

	x, y := t.X, t.Y
	if t.Centered {
		x -= float64(textWidth(t.Content)) * scale / 2
		y -= glyphH * scale / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(t.Color))
	c.target.DrawImage(c.textImage(t.Content), op)
}

// textImage returns the line rendered in white, cached by content.
func (c *Canvas) textImage(s string) *ebiten.Image {
	if img, ok := c.text[s]; ok {
		return img
	}

	if len(c.text) >= maxCachedText {
		for k, img := range c.text {
			img.Deallocate()
			delete(c.text, k)
		}
	}

	img := ebiten.NewImage(textWidth(s), glyphH)
	ebitenutil.DebugPrint(img, s)
	c.text[s] = img
	return img
}
