package core

import (
	"encoding/json"
	"testing"
)

func TestPointKeyRoundTrip(t *testing.T) {
	points := []Point{{0, 0}, {-3, 7}, {12, -40}, {-1, -1}}
	for _, p := range points {
		got, err := ParseKey(p.Key())
		if err != nil {
			t.Fatalf("ParseKey(%q) failed: %v", p.Key(), err)
		}
		if got != p {
			t.Errorf("Expected %v, got %v", p, got)
		}
	}

	if _, err := ParseKey("nope"); err == nil {
		t.Error("Expected error for malformed key")
	}
}

func TestBoundsEmptySentinel(t *testing.T) {
	b := EmptyBounds()
	if !b.IsEmpty() {
		t.Fatal("EmptyBounds should report IsEmpty")
	}
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("Expected zero size, got %dx%d", b.Width(), b.Height())
	}

	b = b.Extend(Point{2, 3})
	if b.IsEmpty() || b.Min != (Point{2, 3}) || b.Max != (Point{2, 3}) {
		t.Errorf("Unexpected bounds after extend: %+v", b)
	}
	if b.Width() != 1 || b.Height() != 1 {
		t.Errorf("Expected 1x1, got %dx%d", b.Width(), b.Height())
	}
}

func TestBoundsOfNormalizes(t *testing.T) {
	b := BoundsOf(Point{5, 1}, Point{2, 4})
	if b.Min != (Point{2, 1}) || b.Max != (Point{5, 4}) {
		t.Errorf("Unexpected bounds: %+v", b)
	}
	if !b.Contains(Point{5, 4}) || b.Contains(Point{6, 4}) {
		t.Error("Contains should be inclusive of Max and exclusive beyond it")
	}
	if c := b.Center(); c != (Point{3, 2}) {
		t.Errorf("Expected center (3,2), got %v", c)
	}
}

func TestCellMapBoundsSkipsShadow(t *testing.T) {
	m := CellMap{}
	m.Set(0, 0, "┌")
	m.Set(2, 1, Placeholder)
	m.Set(5, 5, ShadowGlyph)

	b := m.Bounds()
	if b.Min != (Point{0, 0}) || b.Max != (Point{2, 1}) {
		t.Errorf("Expected shadow excluded and placeholder included, got %+v", b)
	}

	if !(CellMap{}).Bounds().IsEmpty() {
		t.Error("Empty map should report empty bounds")
	}
	shadowOnly := CellMap{{1, 1}: ShadowGlyph}
	if !shadowOnly.Bounds().IsEmpty() {
		t.Error("Shadow-only map should report empty bounds")
	}
}

func TestCellMapCloneDoesNotAlias(t *testing.T) {
	m := CellMap{{1, 1}: "x"}
	c := m.Clone()
	c.Set(1, 1, "y")
	if g, _ := m.Get(1, 1); g != "x" {
		t.Errorf("Clone aliased the source map, got %q", g)
	}
}

func TestCellMapJSON(t *testing.T) {
	m := CellMap{{1, 0}: "b", {0, 0}: "a", {0, 1}: Placeholder}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `[["0,0","a"],["1,0","b"],["0,1",""]]`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}

	var back CellMap
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(m) {
		t.Errorf("Round trip mismatch: %v vs %v", back, m)
	}
}

func TestCellMapJSONAcceptsObjectForm(t *testing.T) {
	var m CellMap
	if err := json.Unmarshal([]byte(`{"3,4":"x","-1,2":"y"}`), &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if g, ok := m.Get(3, 4); !ok || g != "x" {
		t.Errorf("Expected x at 3,4, got %q", g)
	}
	if g, ok := m.Get(-1, 2); !ok || g != "y" {
		t.Errorf("Expected y at -1,2, got %q", g)
	}

	if err := json.Unmarshal([]byte(`[["1,1"]]`), &m); err == nil {
		t.Error("Expected error for short pair")
	}
}
