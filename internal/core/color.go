package core

// Color is a foreground color for a screen cell. Games pick from this set;
// platform/tui maps each value to an ANSI 256 palette index. ColorDefault
// leaves the terminal's own foreground.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray // grid dots and board frame
)
