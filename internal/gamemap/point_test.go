package gamemap

import "testing"

func TestOrientationDeltaAndOpposite(t *testing.T) {
	for _, o := range Orientations {
		dx, dy := o.Delta()
		odx, ody := o.Opposite().Delta()
		if dx != -odx || dy != -ody {
			t.Errorf("%v opposite delta mismatch", o)
		}
		if o.TurnRight().TurnLeft() != o {
			t.Errorf("%v: right then left should be identity", o)
		}
	}
	if Up.TurnRight() != Right || Left.TurnRight() != Up {
		t.Error("TurnRight should rotate clockwise")
	}
}

func TestFromDelta(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy int
		want   Orientation
		ok     bool
	}{
		{"zero", 0, 0, Up, false},
		{"right", 3, 1, Right, true},
		{"left", -2, 0, Left, true},
		{"down", 1, 4, Down, true},
		{"up", 0, -1, Up, true},
		{"tie prefers horizontal", -2, 2, Left, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromDelta(tc.dx, tc.dy)
			if got != tc.want || ok != tc.ok {
				t.Errorf("FromDelta(%d,%d) = %v,%v; want %v,%v", tc.dx, tc.dy, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestPointHelpers(t *testing.T) {
	p := Point{2, 2}
	if got := p.Jump(Up); got != (Point{2, 1}) {
		t.Errorf("Jump(Up) = %v", got)
	}
	if got := p.Manhattan(Point{5, 0}); got != 5 {
		t.Errorf("Manhattan = %d; want 5", got)
	}
	n := p.Neighbours8()
	if len(n) != 8 {
		t.Fatalf("expected 8 neighbours, got %d", len(n))
	}
	for _, q := range n {
		if q == p {
			t.Fatal("neighbours must not include the centre")
		}
	}
}
