package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{9, 7}, true},
		{Point{-1, 0}, false},
		{Point{10, 0}, false},
		{Point{0, 8}, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.p); got != c.want {
			t.Errorf("InBounds(%v)=%v, want %v", c.p, got, c.want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5)
	p := Point{2, 2}
	if m.IsWalkable(p) {
		t.Error("wall tile should not be walkable")
	}
	m.Set(p, MakeFloor())
	if !m.IsWalkable(p) {
		t.Error("floor tile should be walkable")
	}
	m.Set(p, MakeImpassable())
	if m.IsWalkable(p) {
		t.Error("impassable tile should not be walkable")
	}
	if !m.IsTransparent(p) {
		t.Error("impassable tile should not block sight")
	}
	if m.IsWalkable(Point{-1, 0}) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestRectCenterAndContains(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
	if !r.Contains(Point{4, 4}) || r.Contains(Point{5, 4}) {
		t.Error("Contains should be inclusive of edges only")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
}

func TestAt(t *testing.T) {
	m := New(5, 5)
	p := Point{2, 3}
	if m.At(p).Kind != TileWall {
		t.Fatal("expected TileWall before any Set")
	}
	m.Set(p, MakeFloor())
	if m.At(p).Kind != TileFloor {
		t.Fatal("Set should be reflected by subsequent At")
	}
}
