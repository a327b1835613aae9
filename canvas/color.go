package canvas

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ANSI control codes
const (
	ColorReset = "\033[0m"
	StyleBold  = "\033[1m"
	StyleDim   = "\033[2m"
)

// namedColors maps the CSS names the editor palette offers to their values.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"navy":    "#000080",
	"teal":    "#008080",
	"maroon":  "#800000",
	"olive":   "#808000",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
}

// ParseColor accepts "#rgb", "#rrggbb" or a CSS color name. The empty
// string and unknown values report ok=false.
func ParseColor(s string) (colorful.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return colorful.Color{}, false
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// ANSIForeground returns the 24-bit foreground escape for a color string, or
// "" when the color cannot be parsed.
func ANSIForeground(color string) string {
	c, ok := ParseColor(color)
	if !ok {
		return ""
	}
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}
