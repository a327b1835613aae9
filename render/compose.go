// Package render paints shapes into character grids.
//
// Shapes are painted in ascending z-order and a later write to a cell wins,
// so the topmost non-empty glyph is what shows.
package render

import (
	"strings"

	"asciidraw/canvas"
	"asciidraw/core"
	"asciidraw/store"
)

// Compose paints the given shapes, which must be in ascending z-order, into
// a grid covering window. Placeholders are never painted. Returns nil for an
// empty window.
func Compose(visible []*store.Shape, window core.Bounds) *canvas.Grid {
	g := canvas.NewGrid(window)
	if g == nil {
		return nil
	}
	Paint(g, visible)
	return g
}

// Paint draws shapes onto an existing grid in slice order.
func Paint(g *canvas.Grid, list []*store.Shape) {
	window := g.Bounds()
	for _, sh := range list {
		for p, glyph := range sh.Data {
			if glyph == core.Placeholder || !window.Contains(p) {
				continue
			}
			g.Set(p, glyph, sh.CellColor(glyph))
		}
	}
}

// PaintCells draws a loose cell map, such as a drawing preview, in one
// color.
func PaintCells(g *canvas.Grid, cells core.CellMap, color string) {
	for p, glyph := range cells {
		if glyph == core.Placeholder {
			continue
		}
		g.Set(p, glyph, color)
	}
}

// Extent returns the bounds of every cell of the shapes, shadows included.
func Extent(list []*store.Shape) core.Bounds {
	b := core.EmptyBounds()
	for _, sh := range list {
		for p := range sh.Data {
			b = b.Extend(p)
		}
	}
	return b
}

// Text renders shapes as plain text. Trailing spaces are trimmed from every
// row.
func Text(list []*store.Shape, window core.Bounds) string {
	g := Compose(list, window)
	if g == nil {
		return ""
	}
	return TrimLines(g.Lines())
}

// TrimLines joins rows with newlines after trimming their trailing spaces.
func TrimLines(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(out, "\n")
}
