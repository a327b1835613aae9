package store

// History keeps document snapshots for undo and redo.
type History struct {
	undo []*Document
	redo []*Document
	max  int
}

// NewHistory creates a history keeping at most depth undo steps.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = 50
	}
	return &History{max: depth}
}

// Push records a state that Undo can return to and drops the redo trail.
func (h *History) Push(doc *Document) {
	h.undo = append(h.undo, doc)
	// If we exceed max, remove oldest
	if len(h.undo) > h.max {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
}

// CanUndo returns true if we can undo
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if we can redo
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Undo swaps current for the most recent recorded state.
func (h *History) Undo(current *Document) (*Document, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return prev, true
}

// Redo swaps current for the most recently undone state.
func (h *History) Redo(current *Document) (*Document, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return next, true
}

// Clear clears all history
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// Stats returns the number of undo and redo steps available.
func (h *History) Stats() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// Checkpoint records the current document so the next change can be
// undone. Call it before a user-visible mutation.
func (s *Store) Checkpoint() {
	s.history.Push(s.Document())
}

// Undo restores the state saved by the last Checkpoint.
func (s *Store) Undo() bool {
	doc, ok := s.history.Undo(s.Document())
	if !ok {
		return false
	}
	s.applySnapshot(doc)
	return true
}

// Redo reapplies the last undone change.
func (s *Store) Redo() bool {
	doc, ok := s.history.Redo(s.Document())
	if !ok {
		return false
	}
	s.applySnapshot(doc)
	return true
}

// History exposes the undo stack, mainly for status display.
func (s *Store) History() *History {
	return s.history
}

func (s *Store) applySnapshot(doc *Document) {
	s.restore(doc)
	s.emit(ShapesCleared, 0, 0)
	s.commit()
}
