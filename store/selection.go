package store

import (
	"sort"

	"asciidraw/core"
	"asciidraw/shapes"
)

// SelectShape selects id. Without add the previous selection is replaced;
// with add the membership of id is toggled. Deselecting the primary shape
// promotes the lowest remaining selected id.
func (s *Store) SelectShape(id int, add bool) bool {
	sh, ok := s.shapes[id]
	if !ok {
		return false
	}
	switch {
	case !add:
		s.clearSelected()
		sh.Selected = true
		s.primary = id
	case sh.Selected:
		sh.Selected = false
		if s.primary == id {
			s.primary = s.lowestSelected()
		}
	default:
		sh.Selected = true
		s.primary = id
	}
	s.emit(ShapeSelected, id, 0)
	s.requestRender()
	return true
}

// ClearSelection deselects everything.
func (s *Store) ClearSelection() {
	s.clearSelected()
	s.emit(ShapeSelected, 0, 0)
	s.requestRender()
}

func (s *Store) clearSelected() {
	for _, sh := range s.shapes {
		sh.Selected = false
	}
	s.primary = 0
}

func (s *Store) lowestSelected() int {
	lowest := 0
	for id, sh := range s.shapes {
		if sh.Selected && (lowest == 0 || id < lowest) {
			lowest = id
		}
	}
	return lowest
}

// SelectAll selects every effectively visible shape.
func (s *Store) SelectAll() int {
	s.clearSelected()
	n := 0
	for _, sh := range s.shapes {
		if s.IsEffectivelyVisible(sh) {
			sh.Selected = true
			n++
		}
	}
	s.primary = s.lowestSelected()
	s.emit(ShapeSelected, 0, 0)
	s.requestRender()
	return n
}

// SelectInBounds selects the visible shapes lying entirely inside b, as a
// marquee does. With add the current selection is kept.
func (s *Store) SelectInBounds(b core.Bounds, add bool) int {
	if !add {
		s.clearSelected()
	}
	n := 0
	for _, sh := range s.shapes {
		if !s.IsEffectivelyVisible(sh) {
			continue
		}
		sb := sh.Bounds()
		if sb.IsEmpty() || !b.Contains(sb.Min) || !b.Contains(sb.Max) {
			continue
		}
		sh.Selected = true
		n++
	}
	if s.primary == 0 || !s.shapes[s.primary].Selected {
		s.primary = s.lowestSelected()
	}
	s.emit(ShapeSelected, 0, 0)
	s.requestRender()
	return n
}

// SelectedIDs returns the selected ids in ascending order.
func (s *Store) SelectedIDs() []int {
	var ids []int
	for id, sh := range s.shapes {
		if sh.Selected {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// SelectedShapes returns the selected shapes in ascending z-order.
func (s *Store) SelectedShapes() []*Shape {
	var out []*Shape
	for _, sh := range s.shapes {
		if sh.Selected {
			out = append(out, sh)
		}
	}
	sortByZ(out)
	return out
}

// Primary returns the primary selected id, or 0.
func (s *Store) Primary() int {
	return s.primary
}

// SingleSelection returns the selected shape when exactly one is selected.
func (s *Store) SingleSelection() (*Shape, bool) {
	ids := s.SelectedIDs()
	if len(ids) != 1 {
		return nil, false
	}
	return s.shapes[ids[0]], true
}

// DeleteSelected removes every selected shape and returns how many.
func (s *Store) DeleteSelected() int {
	ids := s.SelectedIDs()
	if len(ids) == 0 {
		return 0
	}
	s.Batch(func() {
		for _, id := range ids {
			s.RemoveShape(id)
		}
	})
	return len(ids)
}

// DuplicateSelected copies the selected shapes moved by offset, puts the
// copies on top in their original relative order and selects them.
func (s *Store) DuplicateSelected(offset core.Point) []int {
	originals := s.SelectedShapes()
	if len(originals) == 0 {
		return nil
	}
	var ids []int
	s.Batch(func() {
		for _, orig := range originals {
			opts := []ShapeOption{
				WithRoleColors(orig.BorderColor, orig.FillColor, orig.TextColor),
				WithGroup(orig.GroupID),
			}
			if orig.Settings != nil {
				opts = append(opts, WithSettings(shapes.Translate(orig.Settings, offset)))
			}
			dup := s.AddShape(orig.Type, orig.Data.Translate(offset), orig.Color, opts...)
			ids = append(ids, dup.ID)
		}
		s.clearSelected()
		for _, id := range ids {
			s.shapes[id].Selected = true
		}
		s.primary = ids[0]
		s.emit(ShapeSelected, 0, 0)
	})
	return ids
}
