package gamemap

import "testing"

// openMap creates a fully-open (all floor) map for FOV tests.
func openMap(width, height int) *GameMap {
	m := New(width, height)
	for y := range height {
		for x := range width {
			m.Set(Point{x, y}, MakeFloor())
		}
	}
	return m
}

func TestFOVOriginAlwaysVisible(t *testing.T) {
	m := openMap(20, 20)
	m.CastFOV(Point{5, 5}, 5)

	if !m.At(Point{5, 5}).Visible {
		t.Error("origin must always be visible")
	}
	if !m.At(Point{5, 5}).Explored {
		t.Error("origin must be marked explored")
	}
}

func TestClearVisibilityKeepsExplored(t *testing.T) {
	m := openMap(20, 20)
	m.CastFOV(Point{5, 5}, 3)
	m.ClearVisibility()

	if m.At(Point{5, 5}).Visible {
		t.Error("ClearVisibility should reset Visible")
	}
	if !m.At(Point{5, 5}).Explored {
		t.Error("ClearVisibility should keep Explored")
	}
}

func TestFOVNearbyTilesVisible(t *testing.T) {
	// dx²+dy² < radius² → 9 < 25
	m := openMap(20, 20)
	m.CastFOV(Point{10, 10}, 5)

	for _, p := range []Point{{10, 7}, {10, 13}, {7, 10}, {13, 10}} {
		if !m.At(p).Visible {
			t.Errorf("tile %v at distance 3 should be visible (radius=5)", p)
		}
	}
}

func TestFOVRadiusLimitsVisibility(t *testing.T) {
	m := openMap(20, 20)
	m.CastFOV(Point{10, 10}, 4)

	for _, p := range []Point{{10, 15}, {10, 5}, {15, 10}, {5, 10}} {
		if m.At(p).Visible {
			t.Errorf("tile %v at distance 5 should not be visible with radius=4", p)
		}
	}
}

func TestFOVWallBlocksLight(t *testing.T) {
	m := openMap(20, 20)
	m.Set(Point{10, 8}, MakeWall())

	m.CastFOV(Point{10, 10}, 8)

	if !m.At(Point{10, 8}).Visible {
		t.Error("the wall tile itself should be visible")
	}
	if m.At(Point{10, 7}).Visible {
		t.Error("tile behind the wall should not be visible")
	}
}

func TestFOVUnionOfViewers(t *testing.T) {
	m := openMap(30, 10)
	m.ClearVisibility()
	m.CastFOV(Point{2, 5}, 3)
	m.CastFOV(Point{27, 5}, 3)

	if !m.At(Point{2, 5}).Visible || !m.At(Point{27, 5}).Visible {
		t.Error("both viewers' cells should be visible")
	}
	if m.At(Point{15, 5}).Visible {
		t.Error("cell between the viewers is out of both radii")
	}
}

func TestFOVOutOfBoundsOriginNoPanic(t *testing.T) {
	m := openMap(5, 5)
	m.CastFOV(Point{-3, 9}, 5)
}
