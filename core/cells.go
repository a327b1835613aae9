package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// CellMap is the sparse character storage of a shape: grid cell -> glyph.
// A missing key means "no content". An explicit Placeholder value keeps the
// cell in the shape's footprint without drawing anything.
type CellMap map[Point]string

// Set stores glyph at (x, y).
func (m CellMap) Set(x, y int, glyph string) {
	m[Point{X: x, Y: y}] = glyph
}

// Get returns the glyph at (x, y) and whether the cell is present.
func (m CellMap) Get(x, y int) (string, bool) {
	g, ok := m[Point{X: x, Y: y}]
	return g, ok
}

// SetIfEmpty stores glyph only where no cell exists yet.
func (m CellMap) SetIfEmpty(x, y int, glyph string) bool {
	p := Point{X: x, Y: y}
	if _, ok := m[p]; ok {
		return false
	}
	m[p] = glyph
	return true
}

// Clone returns a copy that does not alias m.
func (m CellMap) Clone() CellMap {
	if m == nil {
		return CellMap{}
	}
	out := make(CellMap, len(m))
	for p, g := range m {
		out[p] = g
	}
	return out
}

// Translate returns a copy of m with every key moved by d.
func (m CellMap) Translate(d Point) CellMap {
	out := make(CellMap, len(m))
	for p, g := range m {
		out[p.Add(d)] = g
	}
	return out
}

// Bounds scans every cell except shadow cells. Placeholders count.
// Returns EmptyBounds when nothing qualifies.
func (m CellMap) Bounds() Bounds {
	b := EmptyBounds()
	for p, g := range m {
		if g == ShadowGlyph {
			continue
		}
		b = b.Extend(p)
	}
	return b
}

// Equal reports whether both maps hold the same cells.
func (m CellMap) Equal(o CellMap) bool {
	if len(m) != len(o) {
		return false
	}
	for p, g := range m {
		og, ok := o[p]
		if !ok || og != g {
			return false
		}
	}
	return true
}

// SortedPoints returns the keys in row-major order.
func (m CellMap) SortedPoints() []Point {
	pts := make([]Point, 0, len(m))
	for p := range m {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

// MarshalJSON writes the map as an ordered list of ["x,y", glyph] pairs.
func (m CellMap) MarshalJSON() ([]byte, error) {
	pairs := make([][2]string, 0, len(m))
	for _, p := range m.SortedPoints() {
		pairs = append(pairs, [2]string{p.Key(), m[p]})
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON accepts the pair-list form written by MarshalJSON and also
// the plain object form {"x,y": glyph}, which is what a map degrades to when
// it goes through a careless JSON round-trip.
func (m *CellMap) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	out := CellMap{}
	switch {
	case bytes.Equal(data, []byte("null")):
	case len(data) > 0 && data[0] == '{':
		var obj map[string]string
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("cell map: %w", err)
		}
		for k, g := range obj {
			p, err := ParseKey(k)
			if err != nil {
				return err
			}
			out[p] = g
		}
	default:
		var pairs [][]string
		if err := json.Unmarshal(data, &pairs); err != nil {
			return fmt.Errorf("cell map: %w", err)
		}
		for _, pair := range pairs {
			if len(pair) != 2 {
				return fmt.Errorf("cell map: expected [key, value] pair, got %d elements", len(pair))
			}
			p, err := ParseKey(pair[0])
			if err != nil {
				return err
			}
			out[p] = pair[1]
		}
	}
	*m = out
	return nil
}
