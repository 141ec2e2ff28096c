package core

// Color represents a foreground color for a screen cell or a piece of text.
// Front ends map it to ANSI 256-color codes or RGBA values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorGold
	ColorBrown
	ColorGray
	ColorSky
)
