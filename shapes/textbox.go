package shapes

import (
	"asciidraw/canvas"
	"asciidraw/core"
)

// TextBox draws wrapped, aligned text with an optional single border.
type TextBox struct{}

// Draw implements Generator.
func (TextBox) Draw(start, end core.Point, s Settings) core.CellMap {
	ts, ok := s.(TextSettings)
	if !ok {
		ts = Defaults(KindText).(TextSettings)
	}
	b := core.BoundsOf(start, end)
	cells := core.CellMap{}

	inner := b
	if ts.ShowBorder {
		drawBorder(cells, b, canvas.GetBorderStyle(canvas.BorderSingle))
		inner = shrink(b)
	}
	canvas.LayoutText(ts.Content, inner, ts.AlignH, ts.AlignV, cells.Set)

	if !ts.ShowBorder {
		placeCorners(cells, b)
	}
	return cells
}
