package editor

import (
	"math"

	"asciidraw/core"
	"asciidraw/geometry"
	"asciidraw/shapes"
	"asciidraw/store"
)

// AnchorKind names a resize handle.
type AnchorKind int

const (
	AnchorTopLeft AnchorKind = iota
	AnchorTop
	AnchorTopRight
	AnchorRight
	AnchorBottomRight
	AnchorBottom
	AnchorBottomLeft
	AnchorLeft
	AnchorLineStart
	AnchorLineEnd
)

// String returns the anchor name.
func (k AnchorKind) String() string {
	switch k {
	case AnchorTopLeft:
		return "topLeft"
	case AnchorTop:
		return "top"
	case AnchorTopRight:
		return "topRight"
	case AnchorRight:
		return "right"
	case AnchorBottomRight:
		return "bottomRight"
	case AnchorBottom:
		return "bottom"
	case AnchorBottomLeft:
		return "bottomLeft"
	case AnchorLeft:
		return "left"
	case AnchorLineStart:
		return "start"
	case AnchorLineEnd:
		return "end"
	default:
		return "unknown"
	}
}

// AnchorRadius is the hit tolerance of an anchor in grid cells. It does not
// change with zoom.
const AnchorRadius = 0.5

// Anchor is a resize handle placed on a grid cell.
type Anchor struct {
	Kind AnchorKind
	Pos  core.Point
}

// Anchors returns the resize handles of a shape. Handles sit one cell
// outside the bounds so they never cover border glyphs. Pencil strokes and
// unknown kinds have none.
func Anchors(sh *store.Shape) []Anchor {
	if sh.Type == shapes.KindLine {
		return lineAnchors(sh.Settings)
	}
	b := sh.Bounds()
	if b.IsEmpty() {
		return nil
	}

	c := b.Center()
	left, right := b.Min.X-1, b.Max.X+1
	top, bottom := b.Min.Y-1, b.Max.Y+1
	corners := []Anchor{
		{AnchorTopLeft, core.Point{X: left, Y: top}},
		{AnchorTopRight, core.Point{X: right, Y: top}},
		{AnchorBottomRight, core.Point{X: right, Y: bottom}},
		{AnchorBottomLeft, core.Point{X: left, Y: bottom}},
	}
	edges := []Anchor{
		{AnchorTop, core.Point{X: c.X, Y: top}},
		{AnchorRight, core.Point{X: right, Y: c.Y}},
		{AnchorBottom, core.Point{X: c.X, Y: bottom}},
		{AnchorLeft, core.Point{X: left, Y: c.Y}},
	}

	switch sh.Type {
	case shapes.KindRectangle, shapes.KindText:
		return append(corners, edges...)
	case shapes.KindDiamond:
		return edges
	case shapes.KindImage:
		return corners
	}
	return nil
}

// lineAnchors offsets each endpoint one cell perpendicular to the dominant
// axis: above for horizontal-dominant lines, right for vertical ones.
func lineAnchors(s shapes.Settings) []Anchor {
	ls, ok := s.(shapes.LineSettings)
	if !ok {
		return nil
	}
	d := ls.End.Sub(ls.Start)
	off := core.Point{X: 1}
	if geometry.Abs(d.X) >= geometry.Abs(d.Y) {
		off = core.Point{Y: -1}
	}
	return []Anchor{
		{AnchorLineStart, ls.Start.Add(off)},
		{AnchorLineEnd, ls.End.Add(off)},
	}
}

// AnchorAt returns the anchor of sh under world position w. The test uses
// fractional grid units and the Chebyshev distance to the anchor cell's
// center.
func AnchorAt(sh *store.Shape, w core.WorldPoint) (Anchor, bool) {
	gx, gy := geometry.WorldToGridFloat(w)
	for _, a := range Anchors(sh) {
		ax := float64(a.Pos.X) + 0.5
		ay := float64(a.Pos.Y) + 0.5
		if math.Max(math.Abs(gx-ax), math.Abs(gy-ay)) <= AnchorRadius {
			return a, true
		}
	}
	return Anchor{}, false
}
