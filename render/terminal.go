package render

import (
	"strings"
)

// Capabilities describes what the output terminal can display.
type Capabilities struct {
	Name      string
	Color     bool
	TrueColor bool
	Unicode   bool
}

// DetectCapabilities inspects the environment through getenv.
// ASCIIDRAW_TERMINAL_MODE=ascii|unicode overrides the detection and
// NO_COLOR (https://no-color.org/) always disables color.
func DetectCapabilities(getenv func(string) string) Capabilities {
	caps := Capabilities{Name: getenv("TERM"), Unicode: true}

	term := caps.Name
	if term != "" && !strings.Contains(term, "dumb") {
		if strings.Contains(term, "color") ||
			strings.HasPrefix(term, "xterm") ||
			strings.HasPrefix(term, "screen") ||
			strings.HasPrefix(term, "tmux") {
			caps.Color = true
		}
	}
	switch getenv("COLORTERM") {
	case "truecolor", "24bit":
		caps.Color = true
		caps.TrueColor = true
	}

	if !hasUTF8Locale(getenv) || term == "linux" || term == "dumb" {
		caps.Unicode = false
	}

	switch getenv("ASCIIDRAW_TERMINAL_MODE") {
	case "ascii":
		caps.Unicode = false
	case "unicode":
		caps.Unicode = true
	}

	if getenv("NO_COLOR") != "" {
		caps.Color = false
		caps.TrueColor = false
	}
	return caps
}

// hasUTF8Locale checks the locale variables in precedence order.
func hasUTF8Locale(getenv func(string) string) bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := getenv(env)
		if value == "" {
			continue
		}
		upper := strings.ToUpper(value)
		return strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8")
	}
	return false
}

var asciiFallback = map[rune]rune{
	'┌': '+', '┐': '+', '└': '+', '┘': '+',
	'╭': '+', '╮': '+', '╰': '+', '╯': '+',
	'┏': '+', '┓': '+', '┗': '+', '┛': '+',
	'╔': '+', '╗': '+', '╚': '+', '╝': '+',
	'╒': '+', '╕': '+', '╘': '+', '╛': '+',
	'├': '+', '┤': '+', '┬': '+', '┴': '+', '┼': '+',
	'─': '-', '━': '-', '═': '-', '┄': '-', '┅': '-', '╌': '-',
	'│': '|', '┃': '|', '║': '|', '┆': '|', '┇': '|', '╎': '|', '┊': '|',
	'╲': '\\', '╱': '/',
	'→': '>', '←': '<', '↑': '^', '↓': 'v',
	'↗': '/', '↙': '/', '↘': '\\', '↖': '\\',
	'▶': '>', '◀': '<', '▲': '^', '▼': 'v',
	'◢': '\\', '◣': '/', '◤': '\\', '◥': '/',
	'◇': '*', '◆': '*', '●': 'o', '○': 'o', '•': '.', '·': '.',
	'█': '#', '▓': '#', '▒': ':', '░': '.',
}

// ASCIIRune returns the ASCII stand-in for a drawing glyph.
func ASCIIRune(r rune) (rune, bool) {
	a, ok := asciiFallback[r]
	return a, ok
}

// ASCII replaces drawing glyphs that need Unicode with ASCII stand-ins.
// Other runes are kept.
func ASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if a, ok := asciiFallback[r]; ok {
			return a
		}
		return r
	}, s)
}
