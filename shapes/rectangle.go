package shapes

import (
	"asciidraw/canvas"
	"asciidraw/core"
	"asciidraw/geometry"
)

// Rectangle draws boxes.
type Rectangle struct{}

// Draw implements Generator.
func (Rectangle) Draw(start, end core.Point, s Settings) core.CellMap {
	rs, ok := s.(RectangleSettings)
	if !ok {
		rs = Defaults(KindRectangle).(RectangleSettings)
	}
	b := core.BoundsOf(start, end)
	cells := core.CellMap{}

	if rs.ShowBorder {
		drawBorder(cells, b, canvas.GetBorderStyle(rs.BorderStyle))
	}

	inner := b
	if rs.ShowBorder {
		inner = shrink(b)
	}
	if rs.ShowFill {
		fillBounds(cells, inner, rs.Fill())
	}
	if rs.Text != "" {
		canvas.LayoutText(rs.Text, inner, rs.AlignH, rs.AlignV, cells.Set)
	}
	if rs.ShowShadow {
		drawShadow(cells, b)
	}
	if !rs.ShowBorder {
		placeCorners(cells, b)
	}
	return cells
}

// drawBorder writes the outline of b. A single row collapses to horizontal
// glyphs and a single column to vertical glyphs.
func drawBorder(cells core.CellMap, b core.Bounds, style canvas.BorderStyle) {
	h, v := string(style.Horizontal), string(style.Vertical)

	switch {
	case b.Height() == 1:
		for x := b.Min.X; x <= b.Max.X; x++ {
			cells.Set(x, b.Min.Y, h)
		}
		return
	case b.Width() == 1:
		for y := b.Min.Y; y <= b.Max.Y; y++ {
			cells.Set(b.Min.X, y, v)
		}
		return
	}

	for x := b.Min.X + 1; x < b.Max.X; x++ {
		cells.Set(x, b.Min.Y, h)
		cells.Set(x, b.Max.Y, h)
	}
	for y := b.Min.Y + 1; y < b.Max.Y; y++ {
		cells.Set(b.Min.X, y, v)
		cells.Set(b.Max.X, y, v)
	}
	cells.Set(b.Min.X, b.Min.Y, string(style.TopLeft))
	cells.Set(b.Max.X, b.Min.Y, string(style.TopRight))
	cells.Set(b.Min.X, b.Max.Y, string(style.BottomLeft))
	cells.Set(b.Max.X, b.Max.Y, string(style.BottomRight))
}

// shrink returns the interior of a bordered box, which is empty when the
// box is less than three cells in either dimension.
func shrink(b core.Bounds) core.Bounds {
	if b.Width() < 3 || b.Height() < 3 {
		return core.EmptyBounds()
	}
	return core.Bounds{
		Min: core.Point{X: b.Min.X + 1, Y: b.Min.Y + 1},
		Max: core.Point{X: b.Max.X - 1, Y: b.Max.Y - 1},
	}
}

func fillBounds(cells core.CellMap, b core.Bounds, glyph string) {
	for _, p := range geometry.RectPoints(b) {
		cells[p] = glyph
	}
}

// drawShadow offsets the right and bottom edges of b by one cell.
func drawShadow(cells core.CellMap, b core.Bounds) {
	for y := b.Min.Y + 1; y <= b.Max.Y+1; y++ {
		cells.SetIfEmpty(b.Max.X+1, y, core.ShadowGlyph)
	}
	for x := b.Min.X + 1; x <= b.Max.X; x++ {
		cells.SetIfEmpty(x, b.Max.Y+1, core.ShadowGlyph)
	}
}

// placeCorners keeps the footprint of b alive with invisible cells.
func placeCorners(cells core.CellMap, b core.Bounds) {
	cells.SetIfEmpty(b.Min.X, b.Min.Y, core.Placeholder)
	cells.SetIfEmpty(b.Max.X, b.Min.Y, core.Placeholder)
	cells.SetIfEmpty(b.Min.X, b.Max.Y, core.Placeholder)
	cells.SetIfEmpty(b.Max.X, b.Max.Y, core.Placeholder)
}
