package canvas

import (
	"strings"

	"asciidraw/core"
)

// WrapMode defines how text wrapping should handle long words.
type WrapMode int

const (
	// WrapModeWord wraps at word boundaries; an over-long word overflows.
	WrapModeWord WrapMode = iota
	// WrapModeChar breaks words at character boundaries.
	WrapModeChar
	// WrapModeTruncate wraps at word boundaries and cuts an over-long word
	// to the line width.
	WrapModeTruncate
)

// WrapTextMode wraps text to fit within maxWidth using the specified mode.
// Explicit newlines always start a new line.
func WrapTextMode(text string, maxWidth int, mode WrapMode) []string {
	if maxWidth <= 0 {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, mode)...)
	}
	// A trailing newline does not produce a trailing blank line.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func wrapParagraph(text string, maxWidth int, mode WrapMode) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range words {
		wordWidth := StringWidth(word)

		// Word fits on current line
		if wordWidth <= maxWidth && (currentWidth == 0 || currentWidth+1+wordWidth <= maxWidth) {
			if currentWidth > 0 {
				currentLine.WriteRune(' ')
				currentWidth++
			}
			currentLine.WriteString(word)
			currentWidth += wordWidth
			continue
		}

		// Word doesn't fit, start new line
		if currentLine.Len() > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}

		if wordWidth <= maxWidth {
			currentLine.WriteString(word)
			currentWidth = wordWidth
			continue
		}

		switch mode {
		case WrapModeChar:
			remaining := word
			for StringWidth(remaining) > maxWidth {
				cutPoint := findCutPoint(remaining, maxWidth)
				if cutPoint == 0 {
					// Can't even fit one character, force it
					cutPoint = len(string([]rune(remaining)[0]))
				}
				lines = append(lines, remaining[:cutPoint])
				remaining = remaining[cutPoint:]
			}
			if len(remaining) > 0 {
				currentLine.WriteString(remaining)
				currentWidth = StringWidth(remaining)
			}
		case WrapModeTruncate:
			lines = append(lines, TruncateToWidth(word, maxWidth))
		default:
			lines = append(lines, word)
		}
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return lines
}

// findCutPoint finds where to cut a string to fit within maxWidth.
func findCutPoint(s string, maxWidth int) int {
	if maxWidth <= 0 {
		return 0
	}

	width := 0
	lastIndex := 0

	for i, r := range s {
		charWidth := UnicodeWidth(r)
		if width+charWidth > maxWidth {
			return lastIndex
		}
		width += charWidth
		lastIndex = i + len(string(r))
	}

	return len(s)
}

// HAlign specifies horizontal text alignment within a box.
type HAlign string

// VAlign specifies vertical text alignment within a box.
type VAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"

	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "middle"
	AlignBottom VAlign = "bottom"
)

// LayoutText wraps text into box, aligns the block and each line, and calls
// place for every non-space glyph that falls inside box. Over-long words are
// truncated and rows beyond the box height are dropped.
func LayoutText(text string, box core.Bounds, h HAlign, v VAlign, place func(x, y int, glyph string)) {
	if box.IsEmpty() || strings.TrimSpace(text) == "" {
		return
	}
	width, height := box.Width(), box.Height()
	lines := WrapTextMode(text, width, WrapModeTruncate)
	if len(lines) > height {
		lines = lines[:height]
	}

	top := box.Min.Y
	switch v {
	case AlignMiddle:
		top += (height - len(lines)) / 2
	case AlignBottom:
		top += height - len(lines)
	}

	for i, line := range lines {
		lineWidth := StringWidth(line)
		x := box.Min.X
		switch h {
		case AlignCenter:
			x += (width - lineWidth) / 2
		case AlignRight:
			x += width - lineWidth
		}
		for _, r := range line {
			w := UnicodeWidth(r)
			if w == 0 {
				continue
			}
			if x+w-1 > box.Max.X {
				break
			}
			if r != ' ' {
				place(x, top+i, string(r))
			}
			x += w
		}
	}
}
