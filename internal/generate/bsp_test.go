package generate

import (
	"testing"

	"icoop/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

func defaultTestConfig(seed int64) *Config {
	cfg := DefaultConfig(seed)
	cfg.MapWidth, cfg.MapHeight = 60, 30
	return cfg
}

// reachable flood-fills walkable tiles from start.
func reachable(gmap *gamemap.GameMap, start gamemap.Point) mapset.Set[gamemap.Point] {
	visited := mapset.New[gamemap.Point]()
	if !gmap.IsWalkable(start) {
		return visited
	}
	visited.Put(start)
	queue := []gamemap.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, o := range gamemap.Orientations {
			next := cur.Jump(o)
			if visited.Has(next) || !gmap.IsWalkable(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

func countWalkable(gmap *gamemap.GameMap) int {
	n := 0
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			if gmap.IsWalkable(gamemap.Point{X: x, Y: y}) {
				n++
			}
		}
	}
	return n
}

// TestGenerateAllRoomsConnected verifies that every floor tile is reachable
// from the start.
func TestGenerateAllRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap, start := Generate(defaultTestConfig(seed))
		if !gmap.IsWalkable(start) {
			t.Fatalf("seed=%d: start %v is not walkable", seed, start)
		}
		if got, want := reachable(gmap, start).Size(), countWalkable(gmap); got != want {
			t.Errorf("seed=%d: reached %d of %d floor tiles", seed, got, want)
		}
	}
}

// TestGenerateRoomsDoNotOverlap verifies that no two rooms share tiles.
func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap, _ := Generate(defaultTestConfig(seed))
		rooms := gmap.Rooms
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("seed=%d: room %d %v overlaps room %d %v", seed, i, rooms[i], j, rooms[j])
				}
			}
		}
	}
}

func TestGenerateKeepsBorder(t *testing.T) {
	gmap, _ := Generate(defaultTestConfig(3))
	for x := 0; x < gmap.Width; x++ {
		if walkable(gmap, x, 0) || walkable(gmap, x, gmap.Height-1) {
			t.Fatalf("border row broken at x=%d", x)
		}
	}
	for y := 0; y < gmap.Height; y++ {
		if walkable(gmap, 0, y) || walkable(gmap, gmap.Width-1, y) {
			t.Fatalf("border column broken at y=%d", y)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, sa := Generate(defaultTestConfig(7))
	b, sb := Generate(defaultTestConfig(7))
	if sa != sb || len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("same seed produced different mazes")
	}
	for i := range a.Rooms {
		if a.Rooms[i] != b.Rooms[i] {
			t.Errorf("room %d differs: %v vs %v", i, a.Rooms[i], b.Rooms[i])
		}
	}
}

func mapsetOf(points ...gamemap.Point) mapset.Set[gamemap.Point] {
	s := mapset.New[gamemap.Point]()
	for _, p := range points {
		s.Put(p)
	}
	return s
}

func TestGenerateKeepsOuterWall(t *testing.T) {
	for seed := range int64(10) {
		gmap, _ := Generate(defaultTestConfig(seed))
		for x := 0; x < gmap.Width; x++ {
			if walkable(gmap, x, 0) || walkable(gmap, x, gmap.Height-1) {
				t.Fatalf("seed %d: outer wall open at column %d", seed, x)
			}
		}
		for y := 0; y < gmap.Height; y++ {
			if walkable(gmap, 0, y) || walkable(gmap, gmap.Width-1, y) {
				t.Fatalf("seed %d: outer wall open at row %d", seed, y)
			}
		}
	}
}
