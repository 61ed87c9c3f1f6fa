package graphics

import (
	"fmt"
	"image/color"
	"strings"
)

// RGB returns the color specifier string for the given red, green and
// blue intensities, each in the range 0-255.
//
//	graphics.RGB(255, 128, 0) // "#ff8000"
func RGB(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp8(r), clamp8(g), clamp8(b))
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// namedColors maps the color names accepted everywhere a color string is,
// to their RGB values. Unknown names fall back to black.
var namedColors = map[string]color.RGBA{
	"black":      {0x00, 0x00, 0x00, 0xff},
	"white":      {0xff, 0xff, 0xff, 0xff},
	"red":        {0xff, 0x00, 0x00, 0xff},
	"green":      {0x00, 0x80, 0x00, 0xff},
	"blue":       {0x00, 0x00, 0xff, 0xff},
	"yellow":     {0xff, 0xff, 0x00, 0xff},
	"cyan":       {0x00, 0xff, 0xff, 0xff},
	"magenta":    {0xff, 0x00, 0xff, 0xff},
	"orange":     {0xff, 0xa5, 0x00, 0xff},
	"purple":     {0x80, 0x00, 0x80, 0xff},
	"brown":      {0xa5, 0x2a, 0x2a, 0xff},
	"pink":       {0xff, 0xc0, 0xcb, 0xff},
	"gray":       {0x80, 0x80, 0x80, 0xff},
	"grey":       {0x80, 0x80, 0x80, 0xff},
	"lightgray":  {0xd3, 0xd3, 0xd3, 0xff},
	"lightgrey":  {0xd3, 0xd3, 0xd3, 0xff},
	"darkgray":   {0xa9, 0xa9, 0xa9, 0xff},
	"darkgrey":   {0xa9, 0xa9, 0xa9, 0xff},
	"lightblue":  {0xad, 0xd8, 0xe6, 0xff},
	"lightgreen": {0x90, 0xee, 0x90, 0xff},
	"darkblue":   {0x00, 0x00, 0x8b, 0xff},
	"darkgreen":  {0x00, 0x64, 0x00, 0xff},
	"darkred":    {0x8b, 0x00, 0x00, 0xff},
	"gold":       {0xff, 0xd7, 0x00, 0xff},
	"silver":     {0xc0, 0xc0, 0xc0, 0xff},
	"navy":       {0x00, 0x00, 0x80, 0xff},
	"olive":      {0x80, 0x80, 0x00, 0xff},
	"teal":       {0x00, 0x80, 0x80, 0xff},
	"maroon":     {0x80, 0x00, 0x00, 0xff},
	"lime":       {0x00, 0xff, 0x00, 0xff},
}

// ParseColor converts a color specifier string to an RGBA value.
// Accepted forms are named colors ("red", "light blue"), "#rgb" and
// "#rrggbb" hex triplets, and "" for fully transparent. The second
// return value reports whether the specifier was recognized; callers
// that ignore it get black for unknown names.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.RGBA{}, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if c, ok := namedColors[strings.ReplaceAll(s, " ", "")]; ok {
		return c, true
	}
	return color.RGBA{A: 0xff}, false
}

func parseHexColor(s string) (color.RGBA, bool) {
	var r, g, b int
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{A: 0xff}, false
		}
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return color.RGBA{A: 0xff}, false
		}
		r, g, b = r*17, g*17, b*17
	default:
		return color.RGBA{A: 0xff}, false
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, true
}
