// Package geometry converts between continuous world space and the discrete
// character grid, and owns the camera transform between screen and world.
package geometry

import (
	"math"

	"asciidraw/core"
)

// Cell size in world units. A monospace glyph is twice as tall as it is wide.
const (
	CellWidth  = 10.0
	CellHeight = 2 * CellWidth
)

// WorldToGrid returns the cell containing w. Coordinates are floored, not
// rounded, so the whole cell rectangle maps to the same index.
func WorldToGrid(w core.WorldPoint) core.Point {
	return core.Point{
		X: int(math.Floor(w.X / CellWidth)),
		Y: int(math.Floor(w.Y / CellHeight)),
	}
}

// GridToWorld returns the center of cell p, so center-anchored glyphs line
// up with the grid.
func GridToWorld(p core.Point) core.WorldPoint {
	return core.WorldPoint{
		X: float64(p.X)*CellWidth + CellWidth/2,
		Y: float64(p.Y)*CellHeight + CellHeight/2,
	}
}

// WorldToGridFloat returns w in fractional grid units. Used for tolerance
// checks that must not depend on zoom.
func WorldToGridFloat(w core.WorldPoint) (float64, float64) {
	return w.X / CellWidth, w.Y / CellHeight
}

// GridLine enumerates the cells approximating the segment from a to b using
// max(|dx|,|dy|)+1 equally spaced samples, each rounded to the nearest cell.
// Line bodies, previews and pencil interpolation all share it.
func GridLine(a, b core.Point) []core.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := max(Abs(dx), Abs(dy))
	if steps == 0 {
		return []core.Point{a}
	}

	pts := make([]core.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, core.Point{
			X: RoundHalfUp(float64(a.X) + float64(dx)*t),
			Y: RoundHalfUp(float64(a.Y) + float64(dy)*t),
		})
	}
	return pts
}

// RectPoints enumerates every cell of b in row-major order.
func RectPoints(b core.Bounds) []core.Point {
	if b.IsEmpty() {
		return nil
	}
	pts := make([]core.Point, 0, b.Width()*b.Height())
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			pts = append(pts, core.Point{X: x, Y: y})
		}
	}
	return pts
}

// RectOutline enumerates the perimeter cells of b, each exactly once.
func RectOutline(b core.Bounds) []core.Point {
	if b.IsEmpty() {
		return nil
	}
	var pts []core.Point
	for x := b.Min.X; x <= b.Max.X; x++ {
		pts = append(pts, core.Point{X: x, Y: b.Min.Y})
		if b.Max.Y != b.Min.Y {
			pts = append(pts, core.Point{X: x, Y: b.Max.Y})
		}
	}
	for y := b.Min.Y + 1; y < b.Max.Y; y++ {
		pts = append(pts, core.Point{X: b.Min.X, Y: y})
		if b.Max.X != b.Min.X {
			pts = append(pts, core.Point{X: b.Max.X, Y: y})
		}
	}
	return pts
}
