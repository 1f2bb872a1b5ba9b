package core

// Color is the foreground color of a screen cell. The zero value leaves
// the terminal's own color in place.
type Color uint8

// Palette used by the world renderer.
const (
	ColorDefault Color = iota
	ColorGray
	ColorGreen
	ColorOrange
	ColorBlue
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

var ansiCodes = [...]string{
	ColorDefault:       "",
	ColorGray:          "245",
	ColorGreen:         "2",
	ColorOrange:        "208",
	ColorBlue:          "4",
	ColorWhite:         "7",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
}

var colorNames = [...]string{
	ColorDefault:       "default",
	ColorGray:          "gray",
	ColorGreen:         "green",
	ColorOrange:        "orange",
	ColorBlue:          "blue",
	ColorWhite:         "white",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
}

// ANSI returns the 256-color code for c, or "" for the default color and
// anything outside the palette.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "default"
	}
	return colorNames[c]
}
