package shapes

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"asciidraw/core"
)

// Columns splits a line into one entry per terminal column. A wide
// grapheme cluster occupies its first column and leaves "" in the columns it
// covers; zero-width clusters are dropped.
func Columns(line string) []string {
	var out []string
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		out = append(out, cluster)
		for i := 1; i < w; i++ {
			out = append(out, "")
		}
	}
	return out
}

// Resample scales the original rows of an image into b with nearest
// neighbour sampling. Spaces stay transparent; the four corners keep the
// footprint when they sample nothing.
func Resample(lines []string, b core.Bounds) core.CellMap {
	cells := core.CellMap{}
	if b.IsEmpty() {
		return cells
	}

	src := make([][]string, len(lines))
	srcW := 0
	for i, line := range lines {
		src[i] = Columns(line)
		srcW = max(srcW, len(src[i]))
	}
	srcH := len(src)
	w, h := b.Width(), b.Height()

	if srcW > 0 && srcH > 0 {
		for ty := 0; ty < h; ty++ {
			row := src[ty*srcH/h]
			for tx := 0; tx < w; tx++ {
				sx := tx * srcW / w
				if sx >= len(row) || row[sx] == "" || row[sx] == " " {
					continue
				}
				cells.Set(b.Min.X+tx, b.Min.Y+ty, row[sx])
			}
		}
	}

	placeCorners(cells, b)
	return cells
}
