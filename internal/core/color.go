package core

// Color identifies a foreground color for a screen cell. The platform
// layer maps these to terminal colors; game logic never deals with ANSI
// codes directly.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
