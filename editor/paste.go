package editor

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"asciidraw/core"
	"asciidraw/render"
	"asciidraw/shapes"
	"asciidraw/store"
)

// PasteLines normalizes pasted text and splits it into rows. Carriage
// returns are dropped, as are trailing empty rows.
func PasteLines(text string) []string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Paste creates an image shape from plain text with its top-left cell at
// at. Every non-space grapheme lands at (at.X+col, at.Y+row). Blank text
// creates nothing.
func (e *Editor) Paste(text string, at core.Point) (*store.Shape, bool) {
	lines := PasteLines(text)
	w := 0
	for _, line := range lines {
		w = max(w, len(shapes.Columns(line)))
	}
	if w == 0 {
		return nil, false
	}

	b := core.Bounds{Min: at, Max: core.Point{X: at.X + w - 1, Y: at.Y + len(lines) - 1}}
	cells := shapes.Resample(lines, b)

	e.store.Checkpoint()
	sh := e.store.AddShape(shapes.KindImage, cells, e.color,
		store.WithSettings(shapes.ImageSettings{Lines: lines}))
	e.store.SelectShape(sh.ID, false)
	return sh, true
}

// CopySelectionText renders the selected shapes, and only those, as plain
// text clipped to their combined bounds.
func (e *Editor) CopySelectionText() string {
	sel := e.store.SelectedShapes()
	if len(sel) == 0 {
		return ""
	}
	return render.Text(sel, render.Extent(sel))
}
