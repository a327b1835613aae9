package editor

import (
	"strings"

	"asciidraw/canvas"
	"asciidraw/core"
	"asciidraw/shapes"
)

// ResizeBounds applies a pointer delta to orig for the given anchor. Corner
// anchors move the two edges they touch and edge anchors one edge. Diamond
// edges recompute all four edges around the center so the diamond stays
// square. The result is at least two cells along each axis.
func ResizeBounds(kind shapes.Kind, anchor AnchorKind, orig core.Bounds, delta core.Point) core.Bounds {
	nb := orig
	switch anchor {
	case AnchorTopLeft:
		nb.Min.X += delta.X
		nb.Min.Y += delta.Y
	case AnchorTop:
		nb.Min.Y += delta.Y
	case AnchorTopRight:
		nb.Max.X += delta.X
		nb.Min.Y += delta.Y
	case AnchorRight:
		nb.Max.X += delta.X
	case AnchorBottomRight:
		nb.Max.X += delta.X
		nb.Max.Y += delta.Y
	case AnchorBottom:
		nb.Max.Y += delta.Y
	case AnchorBottomLeft:
		nb.Min.X += delta.X
		nb.Max.Y += delta.Y
	case AnchorLeft:
		nb.Min.X += delta.X
	}

	if kind == shapes.KindDiamond {
		c := orig.Center()
		var dist int
		switch anchor {
		case AnchorLeft:
			dist = c.X - nb.Min.X
		case AnchorTop:
			dist = c.Y - nb.Min.Y
		case AnchorRight:
			dist = nb.Max.X - c.X
		case AnchorBottom:
			dist = nb.Max.Y - c.Y
		default:
			return clampBounds(nb)
		}
		dist = max(dist, 0)
		nb = core.Bounds{
			Min: core.Point{X: c.X - dist, Y: c.Y - dist},
			Max: core.Point{X: c.X + dist, Y: c.Y + dist},
		}
	}
	return clampBounds(nb)
}

func clampBounds(b core.Bounds) core.Bounds {
	if b.Max.X <= b.Min.X {
		b.Max.X = b.Min.X + 1
	}
	if b.Max.Y <= b.Min.Y {
		b.Max.Y = b.Min.Y + 1
	}
	return b
}

// MoveEndpoint moves the start or end of a line by delta.
func MoveEndpoint(ls shapes.LineSettings, anchor AnchorKind, delta core.Point) shapes.LineSettings {
	switch anchor {
	case AnchorLineStart:
		ls.Start = ls.Start.Add(delta)
	case AnchorLineEnd:
		ls.End = ls.End.Add(delta)
	}
	return ls
}

// imageLines returns the source rows of an image shape. Shapes without
// stored rows are rebuilt from their cells.
func imageLines(s shapes.Settings, data core.CellMap) []string {
	if is, ok := s.(shapes.ImageSettings); ok && len(is.Lines) > 0 {
		return is.Lines
	}
	b := data.Bounds()
	if b.IsEmpty() {
		return nil
	}
	lines := make([]string, 0, b.Height())
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		var sb strings.Builder
		for x := b.Min.X; x <= b.Max.X; x++ {
			g, ok := data.Get(x, y)
			if !ok || g == core.ShadowGlyph || g == core.Placeholder {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(g)
			x += max(canvas.StringWidth(g), 1) - 1
		}
		lines = append(lines, sb.String())
	}
	return lines
}
