package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI colors by the terminal renderer.
type Color uint8

// Predefined colors for arena entities.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightBlue
	ColorOrange
	ColorGray
)
