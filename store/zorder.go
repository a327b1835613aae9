package store

func (s *Store) maxZ() int {
	z, first := 0, true
	for _, sh := range s.shapes {
		if first || sh.ZOrder > z {
			z, first = sh.ZOrder, false
		}
	}
	return z
}

// extremeZ returns the smallest and largest z-order among shapes other than
// skip. ok is false when there are none.
func (s *Store) extremeZ(skip int) (lo, hi int, ok bool) {
	for id, sh := range s.shapes {
		if id == skip {
			continue
		}
		if !ok || sh.ZOrder < lo {
			lo = sh.ZOrder
		}
		if !ok || sh.ZOrder > hi {
			hi = sh.ZOrder
		}
		ok = true
	}
	return lo, hi, ok
}

func (s *Store) reordered(id int) {
	s.emit(ShapeReordered, id, 0)
	s.commit()
}

// MoveToFront puts the shape above every other shape.
func (s *Store) MoveToFront(id int) bool {
	sh, ok := s.shapes[id]
	if !ok {
		return false
	}
	if _, hi, ok := s.extremeZ(id); ok {
		sh.ZOrder = hi + 1
	}
	s.reordered(id)
	return true
}

// MoveToBack puts the shape below every other shape.
func (s *Store) MoveToBack(id int) bool {
	sh, ok := s.shapes[id]
	if !ok {
		return false
	}
	if lo, _, ok := s.extremeZ(id); ok {
		sh.ZOrder = lo - 1
	}
	s.reordered(id)
	return true
}

// MoveForward swaps the shape with its neighbour above. It reports false
// for an unknown id or a shape already on top.
func (s *Store) MoveForward(id int) bool {
	return s.step(id, 1)
}

// MoveBackward swaps the shape with its neighbour below. It reports false
// for an unknown id or a shape already at the bottom.
func (s *Store) MoveBackward(id int) bool {
	return s.step(id, -1)
}

func (s *Store) step(id, dir int) bool {
	if _, ok := s.shapes[id]; !ok {
		return false
	}
	ordered := s.AllShapes()
	if hasDuplicateZ(ordered) {
		renumber(ordered)
	}
	idx := -1
	for i, sh := range ordered {
		if sh.ID == id {
			idx = i
			break
		}
	}
	next := idx + dir
	if next < 0 || next >= len(ordered) {
		return false
	}
	a, b := ordered[idx], ordered[next]
	a.ZOrder, b.ZOrder = b.ZOrder, a.ZOrder
	s.reordered(id)
	return true
}

// SendToBack moves the shape to the bottom and then renumbers every shape
// to contiguous z-orders starting at 0. Z-order values are not stable
// across this call.
func (s *Store) SendToBack(id int) bool {
	sh, ok := s.shapes[id]
	if !ok {
		return false
	}
	if lo, _, ok := s.extremeZ(id); ok {
		sh.ZOrder = lo - 1
	}
	renumber(s.AllShapes())
	s.reordered(id)
	return true
}

// NormalizeZOrder renumbers all shapes to 0..n-1 keeping their order.
func (s *Store) NormalizeZOrder() {
	renumber(s.AllShapes())
	s.reordered(0)
}

func renumber(ordered []*Shape) {
	for i, sh := range ordered {
		sh.ZOrder = i
	}
}

func hasDuplicateZ(ordered []*Shape) bool {
	for i := 1; i < len(ordered); i++ {
		if ordered[i].ZOrder == ordered[i-1].ZOrder {
			return true
		}
	}
	return false
}
