package game

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// SpawnCells picks n cells for players arriving at origin. The first player
// gets origin itself; the others get the nearest free cells around it,
// breadth first over walkable ground. When the area is too crowded the
// remaining players share origin.
func SpawnCells(a *area.Area, origin gamemap.Point, n int) []gamemap.Point {
	out := make([]gamemap.Point, 0, n)
	if n <= 0 {
		return out
	}
	out = append(out, origin)

	seen := mapset.New[gamemap.Point]()
	seen.Put(origin)
	queue := []gamemap.Point{origin}
	for len(queue) > 0 && len(out) < n {
		cur := queue[0]
		queue = queue[1:]
		for _, o := range gamemap.Orientations {
			next := cur.Jump(o)
			if seen.Has(next) || !a.Map.IsWalkable(next) {
				continue
			}
			seen.Put(next)
			queue = append(queue, next)
			if a.IsFree(next) && len(out) < n {
				out = append(out, next)
			}
		}
	}
	for len(out) < n {
		out = append(out, origin)
	}
	return out
}
