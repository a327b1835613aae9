package shapes

import (
	"asciidraw/canvas"
	"asciidraw/core"
	"asciidraw/geometry"
)

// Bucket is the angle class of a line segment.
type Bucket int

const (
	BucketHorizontal Bucket = iota
	BucketVertical
	// BucketDiagonalDown runs top-left to bottom-right.
	BucketDiagonalDown
	// BucketDiagonalUp runs bottom-left to top-right.
	BucketDiagonalUp
)

// Classify buckets a segment direction. A run more than twice its rise is
// horizontal, a rise more than twice its run is vertical, anything else is
// diagonal. The zero vector is horizontal.
func Classify(dx, dy int) Bucket {
	ax, ay := geometry.Abs(dx), geometry.Abs(dy)
	switch {
	case ax == 0 && ay == 0, ax > 2*ay:
		return BucketHorizontal
	case ay > 2*ax:
		return BucketVertical
	case geometry.Sign(dx) == geometry.Sign(dy):
		return BucketDiagonalDown
	default:
		return BucketDiagonalUp
	}
}

// BodyGlyph returns the line body glyph of style for bucket.
func BodyGlyph(style canvas.LineStyle, b Bucket) rune {
	switch b {
	case BucketVertical:
		return style.Vertical
	case BucketDiagonalDown:
		return style.DiagonalDown
	case BucketDiagonalUp:
		return style.DiagonalUp
	}
	return style.Horizontal
}

// Heading returns the compass direction of travel from start to end,
// snapped to the segment's bucket.
func Heading(dx, dy int) canvas.Direction {
	switch Classify(dx, dy) {
	case BucketVertical:
		if dy < 0 {
			return canvas.DirUp
		}
		return canvas.DirDown
	case BucketDiagonalDown:
		if dx < 0 {
			return canvas.DirUpLeft
		}
		return canvas.DirDownRight
	case BucketDiagonalUp:
		if dx < 0 {
			return canvas.DirDownLeft
		}
		return canvas.DirUpRight
	}
	if dx < 0 {
		return canvas.DirLeft
	}
	return canvas.DirRight
}

// opposite returns the reverse compass direction.
func opposite(d canvas.Direction) canvas.Direction {
	return (d + 4) % 8
}

// Line draws straight segments with optional end caps.
type Line struct{}

// Draw implements Generator. Unlike the box types, start and end keep their
// order so caps point the right way.
func (Line) Draw(start, end core.Point, s Settings) core.CellMap {
	ls, ok := s.(LineSettings)
	if !ok {
		ls = Defaults(KindLine).(LineSettings)
	}
	cells := core.CellMap{}

	d := end.Sub(start)
	body := string(BodyGlyph(canvas.GetLineStyle(ls.Style), Classify(d.X, d.Y)))
	for _, p := range geometry.GridLine(start, end) {
		cells.Set(p.X, p.Y, body)
	}

	heading := Heading(d.X, d.Y)
	if caps, ok := canvas.GetCapStyle(ls.StartCap); ok {
		cells.Set(start.X, start.Y, string(caps.Glyph(opposite(heading))))
	}
	if caps, ok := canvas.GetCapStyle(ls.EndCap); ok {
		cells.Set(end.X, end.Y, string(caps.Glyph(heading)))
	}
	return cells
}
