// Package editor turns pointer and keyboard input into shape store
// mutations: hit-testing, anchors, the drag/resize state machine, drawing
// tools and paste.
package editor

import (
	"asciidraw/core"
	"asciidraw/store"
)

// ShapeAt returns the topmost candidate occupying p. Candidates are in
// ascending z-order, so they are scanned from the end. Shadow cells never
// hit. A shape with nothing but placeholders is hit anywhere inside its
// bounds.
func ShapeAt(p core.Point, candidates []*store.Shape) *store.Shape {
	for i := len(candidates) - 1; i >= 0; i-- {
		sh := candidates[i]
		glyph, ok := sh.Data[p]
		if ok && glyph != core.ShadowGlyph {
			return sh
		}
		if !ok && placeholderOnly(sh.Data) && sh.Bounds().Contains(p) {
			return sh
		}
	}
	return nil
}

func placeholderOnly(cells core.CellMap) bool {
	found := false
	for _, g := range cells {
		switch g {
		case core.Placeholder:
			found = true
		case core.ShadowGlyph:
		default:
			return false
		}
	}
	return found
}
