package shapes

import (
	"fmt"
	"sync"

	"asciidraw/core"
	"asciidraw/geometry"
)

// Generator produces the cell map of a shape from two grid corners and the
// shape's settings. Implementations must be pure.
type Generator interface {
	Draw(start, end core.Point, s Settings) core.CellMap
}

// Registry maps shape kinds to their generators.
type Registry struct {
	mu         sync.RWMutex
	generators map[Kind]Generator
}

// NewRegistry creates a registry with the built-in geometry kinds.
func NewRegistry() *Registry {
	r := &Registry{generators: make(map[Kind]Generator)}
	r.Register(KindRectangle, Rectangle{})
	r.Register(KindDiamond, Diamond{})
	r.Register(KindLine, Line{})
	r.Register(KindText, TextBox{})
	return r
}

// Register adds or replaces the generator for kind.
func (r *Registry) Register(kind Kind, g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[kind] = g
}

// Lookup returns the generator for kind.
func (r *Registry) Lookup(kind Kind) (Generator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.generators[kind]
	return g, ok
}

// Draw runs the generator for kind.
func (r *Registry) Draw(kind Kind, start, end core.Point, s Settings) (core.CellMap, error) {
	g, ok := r.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("draw %s: %w", kind, ErrUnknownKind)
	}
	return g.Draw(start, end, s), nil
}

// DrawWorld converts two world positions to grid cells and draws.
func (r *Registry) DrawWorld(kind Kind, start, end core.WorldPoint, s Settings) (core.CellMap, error) {
	return r.Draw(kind, geometry.WorldToGrid(start), geometry.WorldToGrid(end), s)
}

// Regenerate redraws a shape of the given kind within bounds b. Lines use
// the endpoints stored in their settings.
func (r *Registry) Regenerate(kind Kind, b core.Bounds, s Settings) (core.CellMap, bool) {
	g, ok := r.Lookup(kind)
	if !ok || b.IsEmpty() {
		return nil, false
	}
	start, end := b.Min, b.Max
	if ls, ok := s.(LineSettings); ok {
		start, end = ls.Start, ls.End
	}
	return g.Draw(start, end, s), true
}
