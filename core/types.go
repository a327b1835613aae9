// Package core contains the fundamental types shared by every asciidraw package.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Reserved cell values.
const (
	// ShadowGlyph marks a drop-shadow cell. Shadow cells never count towards
	// bounds or hit-tests.
	ShadowGlyph = "░"

	// Placeholder is an invisible cell that keeps a shape's footprint alive
	// when nothing else is rendered.
	Placeholder = ""
)

// Point is a grid coordinate: an index into the unbounded integer lattice.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Key returns the canonical "x,y" string form of the point. Two points are
// equal iff their keys are equal.
func (p Point) Key() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return "(" + p.Key() + ")"
}

// ParseKey parses a key produced by Point.Key.
func ParseKey(key string) (Point, error) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return Point{}, fmt.Errorf("invalid cell key %q", key)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("invalid cell key %q: %w", key, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("invalid cell key %q: %w", key, err)
	}
	return Point{X: x, Y: y}, nil
}

// WorldPoint is a continuous render-space position.
type WorldPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is an inclusive rectangle of grid cells. The zero-content sentinel
// returned by EmptyBounds has Min > Max and must be checked with IsEmpty
// before use.
type Bounds struct {
	Min, Max Point
}

// EmptyBounds returns the sentinel for "no cells".
func EmptyBounds() Bounds {
	return Bounds{
		Min: Point{X: math.MaxInt, Y: math.MaxInt},
		Max: Point{X: math.MinInt, Y: math.MinInt},
	}
}

// BoundsOf returns the normalized bounds spanned by two corner points.
func BoundsOf(a, b Point) Bounds {
	return Bounds{
		Min: Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// IsEmpty reports whether b is the empty sentinel (or otherwise inverted).
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Width returns the number of columns covered.
func (b Bounds) Width() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows covered.
func (b Bounds) Height() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.Y - b.Min.Y + 1
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Extend grows b to include p.
func (b Bounds) Extend(p Point) Bounds {
	return Bounds{
		Min: Point{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y)},
		Max: Point{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y)},
	}
}

// Center returns the integer center cell (rounding towards Min).
func (b Bounds) Center() Point {
	return Point{
		X: b.Min.X + (b.Max.X-b.Min.X)/2,
		Y: b.Min.Y + (b.Max.Y-b.Min.Y)/2,
	}
}

// Translate returns b moved by d.
func (b Bounds) Translate(d Point) Bounds {
	return Bounds{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}
