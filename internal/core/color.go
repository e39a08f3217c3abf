package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorGray
	ColorPurple
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"purple":         ColorPurple,
}

// ParseColor resolves a config color name. Unknown names yield ColorDefault.
func ParseColor(name string) Color {
	if c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return ColorDefault
}

// RGB returns an approximate 24-bit value for pixel front ends.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed, ColorBrightRed:
		return 0xFF, 0x00, 0x00
	case ColorGreen, ColorBrightGreen:
		return 0x00, 0xFF, 0x00
	case ColorYellow, ColorBrightYellow:
		return 0xFF, 0xFF, 0x00
	case ColorBlue:
		return 0x00, 0x00, 0xFF
	case ColorBrightBlue:
		return 0x00, 0x95, 0xDD
	case ColorMagenta, ColorBrightMagenta:
		return 0xFF, 0x00, 0xFF
	case ColorCyan, ColorBrightCyan:
		return 0x00, 0xFF, 0xFF
	case ColorOrange:
		return 0xFF, 0x7F, 0x00
	case ColorGray:
		return 0x80, 0x80, 0x80
	case ColorPurple:
		return 0x80, 0x00, 0x80
	default:
		return 0xFF, 0xFF, 0xFF
	}
}

// xterm256 holds the palette index each terminal front end paints a color
// with. ColorDefault is absent: it keeps the terminal's own foreground.
var xterm256 = [...]int{
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
	ColorPurple:        93,
}

// Palette returns the xterm 256-color index for c. ok is false for
// ColorDefault and unknown values.
func (c Color) Palette() (index int, ok bool) {
	if c == ColorDefault || int(c) >= len(xterm256) {
		return 0, false
	}
	return xterm256[c], true
}
