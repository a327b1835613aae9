// Package store is the shape store: identity allocation, CRUD, z-order,
// selection, groups, events and persistence of a drawing document.
//
// The store is single-threaded. Every method must be called from the same
// goroutine (the UI event loop); listeners run synchronously on it.
// Operations on unknown ids return false and never panic.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"asciidraw/core"
	"asciidraw/logging"
	"asciidraw/persist"
	"asciidraw/shapes"
)

// DefaultDocumentKey is the persistence key used when none is configured.
const DefaultDocumentKey = "asciidraw-document"

// Store holds the shapes and groups of one document.
type Store struct {
	shapes       map[int]*Shape
	groups       map[int]*Group
	nextShapeID  int
	nextGroupID  int
	typeCounters map[shapes.Kind]int

	primary int

	bus      *EventBus
	registry *shapes.Registry
	history  *History

	kv  persist.KV
	key string
	now func() time.Time

	batchDepth    int
	pendingRender bool
	pendingSave   bool
}

// Option configures a Store.
type Option func(*Store)

// WithPersistence saves the document under key in kv after every mutation.
func WithPersistence(kv persist.KV, key string) Option {
	return func(s *Store) {
		s.kv = kv
		if key != "" {
			s.key = key
		}
	}
}

// WithRegistry replaces the default generator registry.
func WithRegistry(r *shapes.Registry) Option {
	return func(s *Store) { s.registry = r }
}

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithHistoryDepth bounds the number of undo steps kept.
func WithHistoryDepth(depth int) Option {
	return func(s *Store) { s.history = NewHistory(depth) }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		shapes:       make(map[int]*Shape),
		groups:       make(map[int]*Group),
		nextShapeID:  1,
		nextGroupID:  1,
		typeCounters: make(map[shapes.Kind]int),
		bus:          NewEventBus(),
		key:          DefaultDocumentKey,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = shapes.NewRegistry()
	}
	if s.history == nil {
		s.history = NewHistory(0)
	}
	return s
}

// Registry returns the generator registry used for regeneration.
func (s *Store) Registry() *shapes.Registry {
	return s.registry
}

// Subscribe registers a listener; see EventBus.Subscribe.
func (s *Store) Subscribe(typ EventType, fn Listener) func() {
	return s.bus.Subscribe(typ, fn)
}

func (s *Store) emit(typ EventType, shapeID, groupID int) {
	s.bus.Emit(Event{Type: typ, ShapeID: shapeID, GroupID: groupID})
}

// commit finishes a mutation: persist, then request a render. Inside a
// Batch both are deferred to the end of the outermost batch.
func (s *Store) commit() {
	if s.batchDepth > 0 {
		s.pendingSave = true
		s.pendingRender = true
		return
	}
	s.save()
	s.emit(RenderRequired, 0, 0)
}

// requestRender asks for a redraw without persisting. Inside a Batch the
// request is deferred like commit's.
func (s *Store) requestRender() {
	if s.batchDepth > 0 {
		s.pendingRender = true
		return
	}
	s.emit(RenderRequired, 0, 0)
}

// Batch runs fn and coalesces the persistence writes and render requests
// it triggers into one of each after fn returns.
func (s *Store) Batch(fn func()) {
	s.batchDepth++
	defer func() {
		s.batchDepth--
		if s.batchDepth > 0 {
			return
		}
		if s.pendingSave {
			s.pendingSave = false
			s.save()
		}
		if s.pendingRender {
			s.pendingRender = false
			s.emit(RenderRequired, 0, 0)
		}
	}()
	fn()
}

// AddShape creates a shape from a copy of cells and puts it on top.
func (s *Store) AddShape(kind shapes.Kind, cells core.CellMap, color string, opts ...ShapeOption) *Shape {
	sh := &Shape{
		ID:        s.nextShapeID,
		Type:      kind,
		Data:      cells.Clone(),
		Color:     color,
		ZOrder:    s.maxZ() + 1,
		Visible:   true,
		Timestamp: s.now().UnixMilli(),
	}
	s.nextShapeID++
	for _, opt := range opts {
		opt(sh)
	}
	if sh.GroupID != 0 {
		if _, ok := s.groups[sh.GroupID]; !ok {
			sh.GroupID = 0
		}
	}
	s.typeCounters[kind]++
	if sh.Name == "" {
		sh.Name = fmt.Sprintf("%s %d", displayName(kind), s.typeCounters[kind])
	}
	s.shapes[sh.ID] = sh

	s.emit(ShapeAdded, sh.ID, 0)
	s.commit()
	return sh
}

func displayName(kind shapes.Kind) string {
	k := string(kind)
	if k == "" {
		return "Shape"
	}
	return strings.ToUpper(k[:1]) + k[1:]
}

// Shape returns the live shape with the given id.
func (s *Store) Shape(id int) (*Shape, bool) {
	sh, ok := s.shapes[id]
	return sh, ok
}

// Len returns the number of shapes.
func (s *Store) Len() int {
	return len(s.shapes)
}

// RemoveShape deletes a shape. A group left without members is deleted too.
func (s *Store) RemoveShape(id int) bool {
	sh, ok := s.shapes[id]
	if !ok {
		return false
	}
	s.removeShape(sh)
	s.commit()
	return true
}

func (s *Store) removeShape(sh *Shape) {
	delete(s.shapes, sh.ID)
	if sh.Selected && s.primary == sh.ID {
		s.primary = s.lowestSelected()
	}
	s.emit(ShapeRemoved, sh.ID, 0)
	s.collectGroup(sh.GroupID)
}

// UpdateShape merges the non-nil fields of u into the shape. It returns
// false for an unknown id or data that cannot be normalized.
func (s *Store) UpdateShape(id int, u ShapeUpdate) bool {
	sh, ok := s.shapes[id]
	if !ok {
		return false
	}
	var data core.CellMap
	if u.Data != nil {
		d, err := NormalizeData(u.Data)
		if err != nil {
			logging.Logger().Warn("rejecting shape data", "shape", id, "error", err)
			return false
		}
		data = d
	}

	if u.Name != nil {
		sh.Name = *u.Name
	}
	if u.Color != nil {
		sh.Color = *u.Color
	}
	if u.BorderColor != nil {
		sh.BorderColor = *u.BorderColor
	}
	if u.FillColor != nil {
		sh.FillColor = *u.FillColor
	}
	if u.TextColor != nil {
		sh.TextColor = *u.TextColor
	}
	if u.Visible != nil {
		sh.Visible = *u.Visible
	}
	if u.Locked != nil {
		sh.Locked = *u.Locked
	}
	if u.Settings != nil {
		sh.Settings = u.Settings
	}
	if data != nil {
		sh.Data = data
	}
	sh.Timestamp = s.now().UnixMilli()

	oldGroup := sh.GroupID
	if u.GroupID != nil {
		if _, ok := s.groups[*u.GroupID]; ok || *u.GroupID == 0 {
			sh.GroupID = *u.GroupID
		}
	}

	s.emit(ShapeUpdated, id, 0)
	if oldGroup != sh.GroupID {
		s.collectGroup(oldGroup)
	}
	s.commit()
	return true
}

// SetVisible shows or hides a single shape.
func (s *Store) SetVisible(id int, visible bool) bool {
	return s.UpdateShape(id, ShapeUpdate{Visible: &visible})
}

// SetLocked locks or unlocks a shape. Locked shapes cannot be moved.
func (s *Store) SetLocked(id int, locked bool) bool {
	return s.UpdateShape(id, ShapeUpdate{Locked: &locked})
}

// RegenerateShape redraws a shape from its bounds and settings. Kinds
// without a generator are left untouched and report false.
func (s *Store) RegenerateShape(id int) bool {
	sh, ok := s.shapes[id]
	if !ok || sh.Settings == nil {
		return false
	}
	cells, ok := s.registry.Regenerate(sh.Type, sh.Bounds(), sh.Settings)
	if !ok {
		return false
	}
	sh.Data = cells
	sh.Timestamp = s.now().UnixMilli()
	s.emit(ShapeUpdated, id, 0)
	s.commit()
	return true
}

// UpdateSettings stores new settings and regenerates the shape when its
// kind has a generator.
func (s *Store) UpdateSettings(id int, settings shapes.Settings) bool {
	sh, ok := s.shapes[id]
	if !ok || settings == nil {
		return false
	}
	s.Batch(func() {
		s.UpdateShape(id, ShapeUpdate{Settings: settings})
		if _, ok := s.registry.Lookup(sh.Type); ok {
			s.RegenerateShape(id)
		}
	})
	return true
}

// AllShapes returns every shape sorted by ascending z-order.
func (s *Store) AllShapes() []*Shape {
	out := make([]*Shape, 0, len(s.shapes))
	for _, sh := range s.shapes {
		out = append(out, sh)
	}
	sortByZ(out)
	return out
}

// IsEffectivelyVisible reports whether the shape and its group are visible.
func (s *Store) IsEffectivelyVisible(sh *Shape) bool {
	if !sh.Visible {
		return false
	}
	if sh.GroupID == 0 {
		return true
	}
	g, ok := s.groups[sh.GroupID]
	return !ok || g.Visible
}

// VisibleShapes returns the effectively visible shapes sorted by ascending
// z-order: the paint order.
func (s *Store) VisibleShapes() []*Shape {
	out := make([]*Shape, 0, len(s.shapes))
	for _, sh := range s.shapes {
		if s.IsEffectivelyVisible(sh) {
			out = append(out, sh)
		}
	}
	sortByZ(out)
	return out
}

// Clear removes every shape and group. Ids are not reused afterwards.
func (s *Store) Clear() {
	s.shapes = make(map[int]*Shape)
	s.groups = make(map[int]*Group)
	s.primary = 0
	s.emit(ShapesCleared, 0, 0)
	s.commit()
}

func sortByZ(list []*Shape) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].ZOrder != list[j].ZOrder {
			return list[i].ZOrder < list[j].ZOrder
		}
		return list[i].ID < list[j].ID
	})
}

// save writes the document to the configured KV. Failures are logged and
// otherwise ignored: the in-memory store stays authoritative.
func (s *Store) save() {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(s.Document())
	if err != nil {
		logging.Logger().Warn("encode document failed", "key", s.key, "error", err)
		return
	}
	if err := s.kv.Set(context.Background(), s.key, data); err != nil {
		logging.Logger().Warn("save document failed", "key", s.key, "error", err)
	}
}

// Load replaces the store contents with the persisted document. A missing
// or corrupt document leaves the store empty and reports false.
func (s *Store) Load(ctx context.Context) bool {
	if s.kv == nil {
		return false
	}
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, persist.ErrNotFound) {
			logging.Logger().Warn("load document failed", "key", s.key, "error", err)
		}
		return false
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		logging.Logger().Warn("corrupt document ignored", "key", s.key, "error", err)
		return false
	}
	s.restore(doc)
	s.emit(ShapesCleared, 0, 0)
	s.requestRender()
	return true
}
