package canvas

import (
	"github.com/mattn/go-runewidth"
)

// UnicodeWidth returns the display width of a rune in terminal cells.
func UnicodeWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of a string in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToWidth cuts s so that it occupies at most width cells.
func TruncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}
