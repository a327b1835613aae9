package shapes

import (
	"math"

	"asciidraw/canvas"
	"asciidraw/core"
)

// Diamond draws rhombi inscribed in their bounds.
type Diamond struct{}

// diamondRow is the horizontal extent of one diamond row.
type diamondRow struct {
	y           int
	left, right int
	top         bool
}

// diamondRows computes the left and right edge of every row. The row
// distance from the center grows by one per row down to the middle row
// (which belongs to the top half) and shrinks again below it; it is scaled
// to the half width when the bounds are not square.
func diamondRows(b core.Bounds) []diamondRow {
	w, h := b.Width(), b.Height()
	halfW := float64(w-1) / 2
	maxDist := (h - 1) / 2

	rows := make([]diamondRow, 0, h)
	for r := 0; r < h; r++ {
		top := r <= maxDist
		dist := r
		if !top {
			dist = h - r - 1
		}

		span := halfW
		if maxDist > 0 {
			span = float64(dist) * halfW / float64(maxDist)
		}
		rows = append(rows, diamondRow{
			y:     b.Min.Y + r,
			left:  b.Min.X + int(math.Floor(halfW-span+1e-9)),
			right: b.Min.X + int(math.Ceil(halfW+span-1e-9)),
			top:   top,
		})
	}
	return rows
}

// Draw implements Generator.
func (Diamond) Draw(start, end core.Point, s Settings) core.CellMap {
	ds, ok := s.(DiamondSettings)
	if !ok {
		ds = Defaults(KindDiamond).(DiamondSettings)
	}
	b := core.BoundsOf(start, end)
	rows := diamondRows(b)
	cells := core.CellMap{}

	if ds.ShowFill {
		fill := ds.Fill()
		for _, row := range rows {
			left, right := row.left, row.right
			if ds.ShowBorder {
				left, right = left+1, right-1
			}
			for x := left; x <= right; x++ {
				cells.Set(x, row.y, fill)
			}
		}
	}

	if ds.Text != "" {
		canvas.LayoutText(ds.Text, diamondTextBox(b), ds.AlignH, ds.AlignV, cells.Set)
	}

	if ds.ShowBorder {
		for i, row := range rows {
			if b.Height() == 1 {
				for x := row.left; x <= row.right; x++ {
					cells.Set(x, row.y, string(canvas.DiamondSingle))
				}
				continue
			}
			if row.left == row.right {
				glyph := canvas.DiamondSingle
				switch i {
				case 0:
					glyph = canvas.DiamondTop
				case len(rows) - 1:
					glyph = canvas.DiamondBottom
				}
				cells.Set(row.left, row.y, string(glyph))
				continue
			}
			leftGlyph, rightGlyph := canvas.DiamondRisingEdge, canvas.DiamondFallingEdge
			if !row.top {
				leftGlyph, rightGlyph = rightGlyph, leftGlyph
			}
			cells.Set(row.left, row.y, string(leftGlyph))
			cells.Set(row.right, row.y, string(rightGlyph))
		}
	}

	if !ds.ShowBorder {
		first, last := rows[0], rows[len(rows)-1]
		widest := rows[(b.Height()-1)/2]
		cells.SetIfEmpty(first.left, first.y, core.Placeholder)
		cells.SetIfEmpty(last.left, last.y, core.Placeholder)
		cells.SetIfEmpty(widest.left, widest.y, core.Placeholder)
		cells.SetIfEmpty(widest.right, widest.y, core.Placeholder)
	}

	// the shadow of the rows above the middle falls inside the bounds
	if ds.ShowShadow {
		for _, row := range rows {
			cells.SetIfEmpty(row.right+1, row.y+1, core.ShadowGlyph)
		}
	}
	return cells
}

// diamondTextBox is the centered box of half the width and height in which
// diamond text is laid out.
func diamondTextBox(b core.Bounds) core.Bounds {
	w := max(1, b.Width()/2)
	h := max(1, b.Height()/2)
	minX := b.Min.X + (b.Width()-w)/2
	minY := b.Min.Y + (b.Height()-h)/2
	return core.Bounds{
		Min: core.Point{X: minX, Y: minY},
		Max: core.Point{X: minX + w - 1, Y: minY + h - 1},
	}
}
