package canvas

import (
	"strings"

	"asciidraw/core"
)

// Cell is one character position of a Grid.
type Cell struct {
	Glyph string
	Color string
}

// Grid is a fixed window of character cells positioned at an arbitrary
// origin of the unbounded drawing lattice.
//
// Grid is NOT safe for concurrent writes.
type Grid struct {
	origin core.Point
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates a blank grid covering the inclusive bounds b.
// Returns nil for empty bounds.
func NewGrid(b core.Bounds) *Grid {
	if b.IsEmpty() {
		return nil
	}
	w, h := b.Width(), b.Height()
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w)
	}
	return &Grid{origin: b.Min, width: w, height: h, cells: cells}
}

// Bounds returns the lattice region the grid covers.
func (g *Grid) Bounds() core.Bounds {
	return core.Bounds{
		Min: g.origin,
		Max: core.Point{X: g.origin.X + g.width - 1, Y: g.origin.Y + g.height - 1},
	}
}

// Size returns the width and height of the grid.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Set writes a cell; writes outside the window are ignored.
func (g *Grid) Set(p core.Point, glyph, color string) bool {
	x, y := p.X-g.origin.X, p.Y-g.origin.Y
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	g.cells[y][x] = Cell{Glyph: glyph, Color: color}
	return true
}

// Get returns the cell at p. Positions outside the window are blank.
func (g *Grid) Get(p core.Point) Cell {
	x, y := p.X-g.origin.X, p.Y-g.origin.Y
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Cell{}
	}
	return g.cells[y][x]
}

// Clear resets every cell to blank.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Cell{}
		}
	}
}

// Lines returns one string per row. Blank cells become spaces and the cell
// after a wide glyph is skipped so columns stay aligned.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var sb strings.Builder
		sb.Grow(g.width)
		for x := 0; x < g.width; x++ {
			glyph := g.cells[y][x].Glyph
			if glyph == "" {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(glyph)
			if StringWidth(glyph) > 1 {
				x += StringWidth(glyph) - 1
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

// String returns the grid as text with newlines between rows.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// ColoredString returns the grid with 24-bit ANSI foreground colors.
func (g *Grid) ColoredString() string {
	var sb strings.Builder

	for y := 0; y < g.height; y++ {
		currentColor := ""
		for x := 0; x < g.width; x++ {
			cell := g.cells[y][x]
			color := ""
			if cell.Glyph != "" {
				color = ANSIForeground(cell.Color)
			}

			// Change color if needed
			if color != currentColor {
				if currentColor != "" {
					sb.WriteString(ColorReset)
				}
				if color != "" {
					sb.WriteString(color)
				}
				currentColor = color
			}

			if cell.Glyph == "" {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteString(cell.Glyph)
			if w := StringWidth(cell.Glyph); w > 1 {
				x += w - 1
			}
		}

		// Reset color at end of line if needed
		if currentColor != "" {
			sb.WriteString(ColorReset)
		}

		// Add newline except for last line
		if y < g.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}
