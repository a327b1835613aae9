package geometry

import (
	"math"
	"testing"

	"asciidraw/core"
)

func TestGridWorldInverse(t *testing.T) {
	for x := -20; x <= 20; x += 3 {
		for y := -20; y <= 20; y += 7 {
			p := core.Point{X: x, Y: y}
			if got := WorldToGrid(GridToWorld(p)); got != p {
				t.Errorf("WorldToGrid(GridToWorld(%v)) = %v", p, got)
			}
		}
	}
}

func TestWorldToGridFloors(t *testing.T) {
	tests := []struct {
		w    core.WorldPoint
		want core.Point
	}{
		{core.WorldPoint{X: 0, Y: 0}, core.Point{X: 0, Y: 0}},
		{core.WorldPoint{X: 9.99, Y: 19.99}, core.Point{X: 0, Y: 0}},
		{core.WorldPoint{X: 10, Y: 20}, core.Point{X: 1, Y: 1}},
		{core.WorldPoint{X: -0.1, Y: -0.1}, core.Point{X: -1, Y: -1}},
	}
	for _, tt := range tests {
		if got := WorldToGrid(tt.w); got != tt.want {
			t.Errorf("WorldToGrid(%v) = %v, expected %v", tt.w, got, tt.want)
		}
	}
}

func TestGridToWorldIsCellCenter(t *testing.T) {
	w := GridToWorld(core.Point{X: 2, Y: 3})
	if w.X != 25 || w.Y != 70 {
		t.Errorf("Expected (25,70), got %v", w)
	}
}

func TestGridLine(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Point
		want []core.Point
	}{
		{"single point", core.Point{X: 3, Y: 3}, core.Point{X: 3, Y: 3}, []core.Point{{X: 3, Y: 3}}},
		{"horizontal", core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 0},
			[]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
		{"reverse vertical", core.Point{X: 1, Y: 2}, core.Point{X: 1, Y: 0},
			[]core.Point{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}}},
		{"shallow", core.Point{X: 0, Y: 0}, core.Point{X: 4, Y: 1},
			[]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GridLine(tt.a, tt.b)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d points, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Point %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestGridLineHasNoGaps(t *testing.T) {
	pts := GridLine(core.Point{X: -7, Y: 3}, core.Point{X: 12, Y: -9})
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1])
		if Abs(d.X) > 1 || Abs(d.Y) > 1 {
			t.Fatalf("Gap between %v and %v", pts[i-1], pts[i])
		}
	}
}

func TestRectOutline(t *testing.T) {
	b := core.BoundsOf(core.Point{X: 0, Y: 0}, core.Point{X: 4, Y: 4})
	if got := len(RectOutline(b)); got != 16 {
		t.Errorf("Expected 16 perimeter cells, got %d", got)
	}
	single := core.BoundsOf(core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 2})
	if got := len(RectOutline(single)); got != 1 {
		t.Errorf("Expected 1 perimeter cell for 1x1, got %d", got)
	}
	row := core.BoundsOf(core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 0})
	if got := len(RectOutline(row)); got != 4 {
		t.Errorf("Expected 4 perimeter cells for a single row, got %d", got)
	}
}

func TestRectPoints(t *testing.T) {
	b := core.BoundsOf(core.Point{X: 1, Y: 2}, core.Point{X: 3, Y: 3})
	pts := RectPoints(b)
	if len(pts) != 6 {
		t.Fatalf("Expected 6 cells, got %d", len(pts))
	}
	if pts[0] != (core.Point{X: 1, Y: 2}) || pts[5] != (core.Point{X: 3, Y: 3}) {
		t.Errorf("Expected row-major order from (1,2) to (3,3), got %v", pts)
	}
	if pts[3] != (core.Point{X: 1, Y: 3}) {
		t.Errorf("Expected second row to start at (1,3), got %v", pts[3])
	}
	if got := RectPoints(core.EmptyBounds()); got != nil {
		t.Errorf("Expected no cells for empty bounds, got %v", got)
	}
}

func TestCameraScreenWorldInverse(t *testing.T) {
	c := NewCamera()
	c.X, c.Y = 123.5, -42
	c.SetZoom(2.5)

	s := ScreenPoint{X: 310, Y: 97}
	back := c.WorldToScreen(c.ScreenToWorld(s))
	if math.Abs(back.X-s.X) > 1e-9 || math.Abs(back.Y-s.Y) > 1e-9 {
		t.Errorf("Expected %v, got %v", s, back)
	}
}

func TestCameraZoomAtKeepsPointFixed(t *testing.T) {
	factors := []float64{1.1, 0.5, 3, 0.01, 1000}
	for _, f := range factors {
		c := NewCamera()
		c.X, c.Y = 40, 80
		w := core.WorldPoint{X: 275, Y: -130}

		before := c.WorldToScreen(w)
		c.ZoomAtWorld(w, f)
		after := c.WorldToScreen(w)

		if math.Abs(before.X-after.X) > 1e-6 || math.Abs(before.Y-after.Y) > 1e-6 {
			t.Errorf("factor %v: screen position moved from %v to %v", f, before, after)
		}
		got := c.ScreenToWorld(after)
		if math.Abs(got.X-w.X) > 1e-6 || math.Abs(got.Y-w.Y) > 1e-6 {
			t.Errorf("factor %v: expected world %v, got %v", f, w, got)
		}
	}
}

func TestCameraZoomClamp(t *testing.T) {
	c := NewCamera()
	c.ZoomAt(ScreenPoint{}, 1000)
	if c.Zoom != DefaultZoomLimits.Max {
		t.Errorf("Expected zoom clamped to %v, got %v", DefaultZoomLimits.Max, c.Zoom)
	}
	c.ZoomAt(ScreenPoint{}, 1e-6)
	if c.Zoom != DefaultZoomLimits.Min {
		t.Errorf("Expected zoom clamped to %v, got %v", DefaultZoomLimits.Min, c.Zoom)
	}
	c.ZoomAt(ScreenPoint{}, -2)
	if c.Zoom != DefaultZoomLimits.Min {
		t.Errorf("Negative factor should be ignored, got %v", c.Zoom)
	}

	legacy := &Camera{Zoom: 1, Limits: LegacyZoomLimits}
	legacy.SetZoom(50)
	if legacy.Zoom != 50 {
		t.Errorf("Legacy limits should allow 50, got %v", legacy.Zoom)
	}
}

func TestCameraPan(t *testing.T) {
	c := NewCamera()
	c.SetZoom(2)
	c.Pan(20, -10)
	if c.X != -10 || c.Y != 5 {
		t.Errorf("Expected offset (-10,5), got (%v,%v)", c.X, c.Y)
	}
}

func TestVisibleGrid(t *testing.T) {
	c := NewCamera()
	b := c.VisibleGrid(80*CellWidth, 24*CellHeight)
	if b.Min != (core.Point{}) || b.Max != (core.Point{X: 79, Y: 23}) {
		t.Errorf("Unexpected visible grid %+v", b)
	}
}
