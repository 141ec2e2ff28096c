package core

// Sprite identifies an image drawn by the render sink.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpritePlayer
	SpriteObstacle
	SpriteCoin
)

// String returns the sprite name; it doubles as the asset base name.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpritePlayer:
		return "player"
	case SpriteObstacle:
		return "cactus"
	case SpriteCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// TextSize selects between heading and body text.
type TextSize int

const (
	TextSmall TextSize = iota
	TextLarge
)

// Text is a single line of text placed in world coordinates.
type Text struct {
	X, Y     float64
	Content  string
	Color    Color
	Size     TextSize
	Centered bool // X, Y is the center of the line instead of its top-left
}

// Canvas is the render sink. Coordinates are world pixels; the implementation
// decides how to project them onto its output.
type Canvas interface {
	// Clear fills the whole canvas with a solid color.
	Clear(c Color)

	// DrawSprite draws an image stretched over the given box.
	DrawSprite(s Sprite, at Box)

	// DrawText draws a line of text.
	DrawText(t Text)
}
