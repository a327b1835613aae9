package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"asciidraw/core"
	"asciidraw/persist"
	"asciidraw/shapes"
)

func cells(glyphs ...string) core.CellMap {
	m := core.CellMap{}
	for i, g := range glyphs {
		m.Set(i, 0, g)
	}
	return m
}

func fixedClock() time.Time {
	return time.UnixMilli(1_700_000_000_000)
}

func TestAddShapeDefaults(t *testing.T) {
	s := New(WithClock(fixedClock))

	var events []EventType
	s.Subscribe("", func(e Event) { events = append(events, e.Type) })

	input := cells("a", "b")
	sh := s.AddShape(shapes.KindRectangle, input, "#fff")

	if sh.ID != 1 || sh.ZOrder != 1 {
		t.Errorf("Expected id 1 z 1, got id %d z %d", sh.ID, sh.ZOrder)
	}
	if !sh.Visible || sh.Locked || sh.Selected {
		t.Errorf("Unexpected flags %+v", sh)
	}
	if sh.Name != "Rectangle 1" {
		t.Errorf("Expected generated name, got %q", sh.Name)
	}
	if sh.Timestamp != fixedClock().UnixMilli() {
		t.Errorf("Unexpected timestamp %d", sh.Timestamp)
	}

	input.Set(5, 5, "x")
	if _, ok := sh.Data.Get(5, 5); ok {
		t.Error("Stored data must not alias the caller's map")
	}

	if len(events) != 2 || events[0] != ShapeAdded || events[1] != RenderRequired {
		t.Errorf("Expected [shape:added render:required], got %v", events)
	}

	second := s.AddShape(shapes.KindRectangle, cells("c"), "", WithName("Custom"))
	if second.Name != "Custom" || second.ZOrder != 2 {
		t.Errorf("Unexpected second shape %+v", second)
	}
	third := s.AddShape(shapes.KindRectangle, cells("d"), "")
	if third.Name != "Rectangle 3" {
		t.Errorf("Counter should keep counting, got %q", third.Name)
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	s := New()
	a := s.AddShape(shapes.KindPencil, cells("*"), "")
	s.RemoveShape(a.ID)
	s.Clear()
	b := s.AddShape(shapes.KindPencil, cells("*"), "")
	if b.ID == a.ID {
		t.Errorf("Id %d was reused", a.ID)
	}
}

func TestRemoveUnknown(t *testing.T) {
	s := New()
	if s.RemoveShape(42) {
		t.Error("Removing an unknown id should report false")
	}
	if s.UpdateShape(42, ShapeUpdate{}) || s.MoveToFront(42) || s.SelectShape(42, false) || s.RegenerateShape(42) {
		t.Error("Operations on unknown ids should report false")
	}
}

func TestUpdateShapeNormalizesData(t *testing.T) {
	s := New()
	sh := s.AddShape(shapes.KindPencil, cells("a"), "")

	var degraded any
	json.Unmarshal([]byte(`[["3,4","x"],["5,6","y"]]`), &degraded)

	if !s.UpdateShape(sh.ID, ShapeUpdate{Data: degraded}) {
		t.Fatal("Expected update to succeed")
	}
	if g, _ := sh.Data.Get(3, 4); g != "x" || len(sh.Data) != 2 {
		t.Errorf("Unexpected data %v", sh.Data)
	}

	if s.UpdateShape(sh.ID, ShapeUpdate{Data: 17}) {
		t.Error("Unsupported data should be rejected")
	}
	if len(sh.Data) != 2 {
		t.Error("Rejected update must not change the shape")
	}
}

func TestZOrderOperations(t *testing.T) {
	s := New()
	a := s.AddShape(shapes.KindPencil, cells("a"), "")
	b := s.AddShape(shapes.KindPencil, cells("b"), "")
	c := s.AddShape(shapes.KindPencil, cells("c"), "")

	order := func() []int {
		var ids []int
		for _, sh := range s.VisibleShapes() {
			ids = append(ids, sh.ID)
		}
		return ids
	}
	expect := func(want ...int) {
		t.Helper()
		got := order()
		if len(got) != len(want) {
			t.Fatalf("Expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Expected %v, got %v", want, got)
			}
		}
	}

	s.MoveToFront(a.ID)
	expect(b.ID, c.ID, a.ID)
	s.MoveToBack(a.ID)
	expect(a.ID, b.ID, c.ID)
	if !s.MoveForward(a.ID) {
		t.Fatal("MoveForward should succeed")
	}
	expect(b.ID, a.ID, c.ID)
	if s.MoveForward(c.ID) {
		t.Error("MoveForward on the top shape should be a no-op")
	}
	s.MoveBackward(c.ID)
	expect(b.ID, c.ID, a.ID)
	if s.MoveBackward(b.ID) {
		t.Error("MoveBackward on the bottom shape should be a no-op")
	}

	s.SendToBack(a.ID)
	expect(a.ID, b.ID, c.ID)
	for i, sh := range s.AllShapes() {
		if sh.ZOrder != i {
			t.Errorf("Expected contiguous z-order %d, got %d", i, sh.ZOrder)
		}
	}
}

func TestZOrderStaysStrictlyAscending(t *testing.T) {
	s := New()
	for i := 0; i < 6; i++ {
		s.AddShape(shapes.KindPencil, cells("x"), "")
	}
	ops := []func(int) bool{s.MoveToFront, s.MoveToBack, s.MoveForward, s.MoveBackward}
	for i := 0; i < 60; i++ {
		ops[i%len(ops)](i%6 + 1)

		list := s.VisibleShapes()
		seen := map[int]bool{}
		for j, sh := range list {
			if seen[sh.ID] {
				t.Fatalf("Shape %d appears twice", sh.ID)
			}
			seen[sh.ID] = true
			if j > 0 && list[j-1].ZOrder >= sh.ZOrder {
				t.Fatalf("Step %d: z-order not strictly ascending at %d", i, j)
			}
		}
	}
}

func TestSelection(t *testing.T) {
	s := New()
	a := s.AddShape(shapes.KindPencil, cells("a"), "")
	b := s.AddShape(shapes.KindPencil, cells("b"), "")
	c := s.AddShape(shapes.KindPencil, cells("c"), "")

	s.SelectShape(c.ID, false)
	s.SelectShape(a.ID, true)
	s.SelectShape(b.ID, true)
	if s.Primary() != b.ID {
		t.Errorf("Expected primary %d, got %d", b.ID, s.Primary())
	}

	s.SelectShape(b.ID, true)
	if s.Primary() != a.ID {
		t.Errorf("Expected primary demoted to lowest id %d, got %d", a.ID, s.Primary())
	}
	if _, ok := s.SingleSelection(); ok {
		t.Error("Two shapes selected, single selection should be undefined")
	}

	s.SelectShape(b.ID, false)
	ids := s.SelectedIDs()
	if len(ids) != 1 || ids[0] != b.ID {
		t.Errorf("Single select should replace selection, got %v", ids)
	}

	s.ClearSelection()
	if len(s.SelectedIDs()) != 0 || s.Primary() != 0 {
		t.Error("ClearSelection should empty the set")
	}
}

func TestSelectInBounds(t *testing.T) {
	s := New()
	inside := s.AddShape(shapes.KindPencil, core.CellMap{{X: 1, Y: 1}: "a", {X: 2, Y: 2}: "b"}, "")
	s.AddShape(shapes.KindPencil, core.CellMap{{X: 1, Y: 1}: "a", {X: 9, Y: 9}: "b"}, "")

	n := s.SelectInBounds(core.BoundsOf(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}), false)
	if n != 1 || s.Primary() != inside.ID {
		t.Errorf("Expected only the contained shape, got %d (primary %d)", n, s.Primary())
	}
}

func TestGroupScenario(t *testing.T) {
	s := New()
	a := s.AddShape(shapes.KindPencil, cells("a"), "")
	b := s.AddShape(shapes.KindPencil, cells("b"), "")
	s.AddShape(shapes.KindPencil, cells("c"), "")

	s.SelectShape(a.ID, false)
	s.SelectShape(b.ID, true)
	g, ok := s.GroupSelected("G1")
	if !ok || g.Name != "G1" {
		t.Fatalf("Expected group G1, got %+v", g)
	}

	members := s.ShapesInGroup(g.ID)
	if len(members) != 2 || members[0].ID != a.ID || members[1].ID != b.ID {
		t.Fatalf("Unexpected members %v", members)
	}

	s.SetGroupVisible(g.ID, false)
	visible := s.VisibleShapes()
	if len(visible) != 1 {
		t.Errorf("Expected 1 visible shape, got %d", len(visible))
	}
	if !a.Visible || !b.Visible {
		t.Error("Hiding a group must not change member flags")
	}
}

func TestEmptyGroupIsCollected(t *testing.T) {
	s := New()
	a := s.AddShape(shapes.KindPencil, cells("a"), "")
	g := s.CreateGroup("solo", []int{a.ID})

	var removed []int
	s.Subscribe(GroupRemoved, func(e Event) { removed = append(removed, e.GroupID) })

	s.RemoveShape(a.ID)
	if _, ok := s.Group(g.ID); ok {
		t.Error("Group should be removed with its last member")
	}
	if len(s.ShapesInGroup(g.ID)) != 0 {
		t.Error("Removed group should have no members")
	}
	if len(removed) != 1 || removed[0] != g.ID {
		t.Errorf("Expected group:removed for %d, got %v", g.ID, removed)
	}
}

func TestRemoveGroupKeepsShapes(t *testing.T) {
	s := New()
	a := s.AddShape(shapes.KindPencil, cells("a"), "")
	g := s.CreateGroup("", []int{a.ID})
	if g.Name != "Group 1" {
		t.Errorf("Expected default name, got %q", g.Name)
	}
	if !s.RemoveGroup(g.ID) {
		t.Fatal("RemoveGroup should succeed")
	}
	if a.GroupID != 0 || s.Len() != 1 {
		t.Error("Members should be ungrouped, not deleted")
	}
}

func TestRegenerate(t *testing.T) {
	s := New()
	settings := shapes.Defaults(shapes.KindRectangle)
	drawn := shapes.Rectangle{}.Draw(core.Point{X: 0, Y: 0}, core.Point{X: 4, Y: 3}, settings)
	rect := s.AddShape(shapes.KindRectangle, drawn, "", WithSettings(settings))

	if !s.RegenerateShape(rect.ID) || !rect.Data.Equal(drawn) {
		t.Error("Regeneration with unchanged bounds should reproduce the map")
	}

	double := settings.(shapes.RectangleSettings)
	double.BorderStyle = "double"
	s.UpdateSettings(rect.ID, double)
	if g, _ := rect.Data.Get(0, 0); g != "╔" {
		t.Errorf("Expected regenerated double border, got %q", g)
	}

	pencil := s.AddShape(shapes.KindPencil, cells("*"), "", WithSettings(shapes.PencilSettings{Char: "*"}))
	if s.RegenerateShape(pencil.ID) {
		t.Error("Pencil shapes have no generator")
	}
	unknown := s.AddShape("cloud", cells("~"), "")
	if s.RegenerateShape(unknown.ID) {
		t.Error("Unknown kinds must not regenerate")
	}
}

func TestBatchCoalescesRender(t *testing.T) {
	s := New()
	renders := 0
	s.Subscribe(RenderRequired, func(Event) { renders++ })

	s.Batch(func() {
		for i := 0; i < 5; i++ {
			s.AddShape(shapes.KindPencil, cells("x"), "")
		}
	})
	if renders != 1 {
		t.Errorf("Expected 1 render, got %d", renders)
	}
	if s.Len() != 5 {
		t.Errorf("Expected 5 shapes, got %d", s.Len())
	}
}

func TestBatchCoalescesSelectionRender(t *testing.T) {
	s := New()
	a := s.AddShape(shapes.KindPencil, cells("x"), "")
	b := s.AddShape(shapes.KindPencil, cells("y"), "")

	renders := 0
	s.Subscribe(RenderRequired, func(Event) { renders++ })

	s.Batch(func() {
		s.ClearSelection()
		s.SelectShape(a.ID, false)
		s.SelectShape(b.ID, true)
		s.SelectAll()
		if renders != 0 {
			t.Errorf("Expected no render inside the batch, got %d", renders)
		}
	})
	if renders != 1 {
		t.Errorf("Expected 1 render, got %d", renders)
	}

	s.ClearSelection()
	if renders != 2 {
		t.Errorf("Expected an immediate render outside a batch, got %d", renders)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := New()
	calls := 0
	unsub := s.Subscribe(ShapeAdded, func(Event) { calls++ })
	s.AddShape(shapes.KindPencil, cells("x"), "")
	unsub()
	s.AddShape(shapes.KindPencil, cells("x"), "")
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := persist.NewMemory()

	s := New(WithPersistence(kv, "doc"))
	a := s.AddShape(shapes.KindRectangle,
		shapes.Rectangle{}.Draw(core.Point{}, core.Point{X: 3, Y: 2}, shapes.Defaults(shapes.KindRectangle)),
		"#ff0000", WithSettings(shapes.Defaults(shapes.KindRectangle)), WithRoleColors("#00ff00", "", ""))
	b := s.AddShape(shapes.KindPencil, cells("*", "*"), "")
	s.CreateGroup("G", []int{a.ID, b.ID})
	s.SelectShape(a.ID, false)

	loaded := New(WithPersistence(kv, "doc"))
	if !loaded.Load(ctx) {
		t.Fatal("Expected load to succeed")
	}
	if loaded.Len() != 2 {
		t.Fatalf("Expected 2 shapes, got %d", loaded.Len())
	}
	got, _ := loaded.Shape(a.ID)
	if !got.Data.Equal(a.Data) || got.BorderColor != "#00ff00" || got.GroupID == 0 {
		t.Errorf("Shape did not round-trip: %+v", got)
	}
	if got.Selected {
		t.Error("Selection must not be persisted")
	}
	if _, ok := got.Settings.(shapes.RectangleSettings); !ok {
		t.Errorf("Expected rectangle settings, got %T", got.Settings)
	}
	next := loaded.AddShape(shapes.KindPencil, cells("x"), "")
	if next.ID != 3 || next.Name != "Pencil 2" {
		t.Errorf("Counters should survive the round trip, got id %d name %q", next.ID, next.Name)
	}
}

// failingKV rejects every write.
type failingKV struct {
	*persist.Memory
	writes int
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	f.writes++
	return errors.New("disk full")
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	kv := &failingKV{Memory: persist.NewMemory()}
	s := New(WithPersistence(kv, "doc"))

	renders := 0
	s.Subscribe(RenderRequired, func(Event) { renders++ })

	sh := s.AddShape(shapes.KindPencil, cells("a", "b"), "")
	if s.Len() != 1 {
		t.Fatalf("Expected 1 shape after a failed save, got %d", s.Len())
	}
	if !s.UpdateShape(sh.ID, ShapeUpdate{Data: cells("x")}) {
		t.Fatal("Expected update to succeed after a failed save")
	}

	got, _ := s.Shape(sh.ID)
	if g, _ := got.Data.Get(0, 0); g != "x" || len(got.Data) != 1 {
		t.Errorf("Expected in-memory data [x], got %v", got.Data)
	}
	if kv.writes != 2 {
		t.Errorf("Expected 2 save attempts, got %d", kv.writes)
	}
	if renders != 2 {
		t.Errorf("Expected 2 render requests, got %d", renders)
	}
	if _, err := kv.Get(context.Background(), "doc"); !errors.Is(err, persist.ErrNotFound) {
		t.Errorf("Expected nothing stored, got %v", err)
	}
}

func TestLoadCorruptDocument(t *testing.T) {
	ctx := context.Background()
	kv := persist.NewMemory()
	kv.Set(ctx, "doc", []byte("{not json"))

	s := New(WithPersistence(kv, "doc"))
	if s.Load(ctx) {
		t.Error("Corrupt document should not load")
	}
	if s.Len() != 0 {
		t.Error("Store should stay empty")
	}
	s.AddShape(shapes.KindPencil, cells("x"), "")
	if s.Len() != 1 {
		t.Error("Store should keep working after a failed load")
	}
}

func TestLegacyMigration(t *testing.T) {
	legacy := `{
		"layers": [
			{"id": 1, "name": "Background", "visible": false, "shapes": [
				{"id": 4, "type": "pencil", "data": [["0,0","#"]], "selected": true}
			]},
			{"id": 2, "name": "Empty", "visible": true, "shapes": []},
			{"id": 3, "name": "Top", "shapes": [
				{"id": 7, "type": "pencil", "data": {"1,1": "@"}}
			]}
		],
		"nextShapeId": 5
	}`
	doc, err := DecodeDocument([]byte(legacy))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Groups) != 2 {
		t.Fatalf("Expected 2 groups from non-empty layers, got %d", len(doc.Groups))
	}
	if doc.Groups[0].Name != "Background" || doc.Groups[0].Visible {
		t.Errorf("Unexpected first group %+v", doc.Groups[0])
	}
	if doc.NextShapeID != 8 {
		t.Errorf("Expected nextShapeId 8, got %d", doc.NextShapeID)
	}

	s := New()
	s.restore(doc)
	if s.Len() != 2 {
		t.Fatalf("Expected 2 shapes, got %d", s.Len())
	}
	if len(s.SelectedIDs()) != 0 {
		t.Error("Selection must be reset on load")
	}
	visible := s.VisibleShapes()
	if len(visible) != 1 || visible[0].ID != 7 {
		t.Errorf("Hidden layer should hide its shapes, got %v", visible)
	}
	top, _ := s.Shape(7)
	bottom, _ := s.Shape(4)
	if top.ZOrder <= bottom.ZOrder {
		t.Error("Later layers should paint above earlier ones")
	}
}

func TestLegacyLayerOrder(t *testing.T) {
	legacy := `{
		"layers": [
			{"id": 1, "name": "A", "shapes": [{"id": 1, "type": "pencil", "data": {"0,0": "a"}}]},
			{"id": 2, "name": "B", "order": 0, "shapes": [{"id": 2, "type": "pencil", "data": {"0,0": "b"}}]},
			{"id": 3, "name": "C", "order": 5, "shapes": [{"id": 3, "type": "pencil", "data": {"0,0": "c"}}]},
			{"id": 4, "name": "D", "shapes": [{"id": 4, "type": "pencil", "data": {"0,0": "d"}}]}
		]
	}`
	doc, err := DecodeDocument([]byte(legacy))
	if err != nil {
		t.Fatal(err)
	}

	// A and D sort by file position 0 and 3, B and C by their order field
	want := []string{"A", "B", "D", "C"}
	if len(doc.Groups) != len(want) {
		t.Fatalf("Expected %d groups, got %d", len(want), len(doc.Groups))
	}
	for i, name := range want {
		if doc.Groups[i].Name != name {
			t.Errorf("Expected group %d to be %s, got %s", i, name, doc.Groups[i].Name)
		}
	}
	if doc.Groups[2].Order != 3 {
		t.Errorf("Expected D to keep order 3, got %d", doc.Groups[2].Order)
	}
}

func TestDecodeUnknownSchema(t *testing.T) {
	if _, err := DecodeDocument([]byte(`{"foo": 1}`)); err != ErrUnknownSchema {
		t.Errorf("Expected ErrUnknownSchema, got %v", err)
	}
}

func TestUndoRedo(t *testing.T) {
	s := New()
	s.Checkpoint()
	a := s.AddShape(shapes.KindPencil, cells("a"), "")
	s.Checkpoint()
	s.RemoveShape(a.ID)

	if !s.Undo() {
		t.Fatal("Undo should succeed")
	}
	if _, ok := s.Shape(a.ID); !ok {
		t.Error("Undo should restore the removed shape")
	}
	if !s.Undo() || s.Len() != 0 {
		t.Error("Second undo should return to the empty document")
	}
	if s.Undo() {
		t.Error("Nothing left to undo")
	}
	if !s.Redo() || s.Len() != 1 {
		t.Error("Redo should bring the shape back")
	}

	b := s.AddShape(shapes.KindPencil, cells("b"), "")
	if b.ID <= a.ID {
		t.Errorf("Ids must keep increasing across undo, got %d", b.ID)
	}
}

func TestHistoryDepth(t *testing.T) {
	h := NewHistory(2)
	for i := 0; i < 5; i++ {
		h.Push(&Document{NextShapeID: i})
	}
	if undo, _ := h.Stats(); undo != 2 {
		t.Errorf("Expected 2 undo steps, got %d", undo)
	}
	doc, _ := h.Undo(&Document{NextShapeID: 99})
	if doc.NextShapeID != 4 {
		t.Errorf("Expected most recent state, got %d", doc.NextShapeID)
	}
}

func TestDuplicateAndDeleteSelected(t *testing.T) {
	s := New()
	ls := shapes.LineSettings{Style: "solid", Start: core.Point{X: 0, Y: 0}, End: core.Point{X: 3, Y: 0}}
	line := s.AddShape(shapes.KindLine, shapes.Line{}.Draw(ls.Start, ls.End, ls), "", WithSettings(ls))
	s.SelectShape(line.ID, false)

	ids := s.DuplicateSelected(core.Point{X: 0, Y: 2})
	if len(ids) != 1 {
		t.Fatalf("Expected 1 copy, got %d", len(ids))
	}
	dup, _ := s.Shape(ids[0])
	if _, ok := dup.Data.Get(0, 2); !ok {
		t.Error("Copy should be offset by two rows")
	}
	if dup.Settings.(shapes.LineSettings).Start != (core.Point{X: 0, Y: 2}) {
		t.Error("Line endpoints should move with the copy")
	}
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != dup.ID {
		t.Errorf("Copies should become the selection, got %v", got)
	}

	if n := s.DeleteSelected(); n != 1 || s.Len() != 1 {
		t.Errorf("Expected one deletion leaving one shape, got %d/%d", n, s.Len())
	}
}

func TestCellColor(t *testing.T) {
	sh := &Shape{
		Color:       "#111111",
		BorderColor: "#222222",
		Settings: shapes.RectangleSettings{BoxSettings: shapes.BoxSettings{
			BorderStyle: "single", ShowBorder: true, ShowFill: true, FillChar: "#",
		}},
	}
	if c := sh.CellColor("┌"); c != "#222222" {
		t.Errorf("Expected border color, got %s", c)
	}
	if c := sh.CellColor("#"); c != "#111111" {
		t.Errorf("Unset fill color should fall back, got %s", c)
	}
}

func TestGroupHelpers(t *testing.T) {
	s := New()
	a := s.AddShape(shapes.KindPencil, cells("a"), "")
	b := s.AddShape(shapes.KindPencil, cells("b"), "")
	first := s.CreateGroup("", []int{a.ID})
	second := s.CreateGroup("second", []int{b.ID})

	if first.Name != "Group "+strconv.Itoa(first.ID) {
		t.Errorf("Expected a default group name, got %q", first.Name)
	}
	if groups := s.Groups(); len(groups) != 2 || groups[0].ID != first.ID || groups[1].ID != second.ID {
		t.Errorf("Expected groups in creation order, got %+v", groups)
	}

	if !s.RenameGroup(first.ID, "renamed") || first.Name != "renamed" {
		t.Errorf("Expected rename, got %q", first.Name)
	}
	if !s.ToggleGroupExpanded(first.ID) || first.Expanded {
		t.Error("Expected the group collapsed")
	}
	if s.RenameGroup(99, "x") || s.ToggleGroupExpanded(99) {
		t.Error("Expected unknown groups to be rejected")
	}

	if !s.SelectGroup(second.ID) {
		t.Fatal("Expected SelectGroup to succeed")
	}
	if ids := s.SelectedIDs(); len(ids) != 1 || ids[0] != b.ID {
		t.Errorf("Expected only %d selected, got %v", b.ID, ids)
	}
}

func TestNormalizeZOrder(t *testing.T) {
	s := New()
	a := s.AddShape(shapes.KindPencil, cells("a"), "")
	b := s.AddShape(shapes.KindPencil, cells("b"), "")
	c := s.AddShape(shapes.KindPencil, cells("c"), "")
	s.MoveToFront(a.ID)
	s.MoveToFront(a.ID)

	s.NormalizeZOrder()
	want := []int{b.ID, c.ID, a.ID}
	for i, sh := range s.AllShapes() {
		if sh.ID != want[i] || sh.ZOrder != i {
			t.Errorf("Position %d: expected shape %d at z %d, got shape %d at z %d", i, want[i], i, sh.ID, sh.ZOrder)
		}
	}
}
