package models

import "fmt"

// Color is the closed set of accent colors entities may carry. Keeping this
// an enumeration rather than open strings makes exhaustiveness checkable.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorPink   Color = "pink"
	ColorTeal   Color = "teal"
)

// Colors lists every allowed color token.
var Colors = []Color{
	ColorBlue, ColorGreen, ColorPurple, ColorRed,
	ColorOrange, ColorYellow, ColorPink, ColorTeal,
}

// ansiCodes maps each color token to a terminal color for rendering.
var ansiCodes = map[Color]string{
	ColorBlue:   "33",
	ColorGreen:  "35",
	ColorPurple: "99",
	ColorRed:    "160",
	ColorOrange: "208",
	ColorYellow: "220",
	ColorPink:   "205",
	ColorTeal:   "37",
}

// ANSI returns the terminal color code for c, defaulting to white for
// unknown tokens loaded from older data.
func (c Color) ANSI() string {
	if code, ok := ansiCodes[c]; ok {
		return code
	}
	return "255"
}

// ParseColor validates a color token against the allowed set.
func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if Color(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown color %q", s)
}
