package generate

import (
	"icoop/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// EnemySpawn is one enemy to create.
type EnemySpawn struct {
	Entry  EnemySpawnEntry
	At     gamemap.Point
	Facing gamemap.Orientation
}

// PopulateResult lists what Populate placed.
type PopulateResult struct {
	Enemies []EnemySpawn
	Hearts  []gamemap.Point
	Rocks   []gamemap.Point
	Exit    gamemap.Point
}

// Populate decides where the maze's enemies, hearts, rocks and exit go. The
// first room is left to the players, the exit sits in the centre of the
// last room, and nothing is placed on a room's outer ring so every room
// stays crossable.
func Populate(gmap *gamemap.GameMap, cfg *Config) PopulateResult {
	var result PopulateResult
	rooms := gmap.Rooms
	if len(rooms) == 0 {
		return result
	}

	occupied := mapset.New[gamemap.Point]()
	sx, sy := rooms[0].Center()
	occupied.Put(gamemap.Point{X: sx, Y: sy})

	last := rooms[len(rooms)-1]
	ex, ey := last.Center()
	if len(rooms) == 1 {
		ex, ey = last.X2, last.Y2
	}
	result.Exit = gamemap.Point{X: ex, Y: ey}
	occupied.Put(result.Exit)

	if len(rooms) <= 2 {
		return result
	}
	placeable := rooms[1 : len(rooms)-1]
	pick := func(room gamemap.Rect) (gamemap.Point, bool) {
		p, ok := pickFreeInRoom(room, cfg, occupied)
		if ok {
			occupied.Put(p)
		}
		return p, ok
	}
	spawn := func(room gamemap.Rect, entry EnemySpawnEntry) bool {
		p, ok := pick(room)
		if !ok {
			return false
		}
		facing := gamemap.Orientations[cfg.Rand.Intn(len(gamemap.Orientations))]
		result.Enemies = append(result.Enemies, EnemySpawn{Entry: entry, At: p, Facing: facing})
		return true
	}

	budget := cfg.EnemyBudget

	// One enemy per room first, the cheapest that fits.
	if len(cfg.EnemyTable) > 0 {
		for _, room := range placeable {
			aff := affordableEnemies(cfg.EnemyTable, budget)
			if len(aff) == 0 {
				break
			}
			entry := cheapestEntry(aff)
			if spawn(room, entry) {
				budget -= entry.ThreatCost
			}
		}
	}

	// Then spend what is left at random. Each failed pick costs an attempt
	// so crowded mazes terminate.
	for attempts := 0; budget > 0 && len(cfg.EnemyTable) > 0 && attempts < 100; attempts++ {
		affordable := affordableEnemies(cfg.EnemyTable, budget)
		if len(affordable) == 0 {
			break
		}
		room := placeable[cfg.Rand.Intn(len(placeable))]
		entry := affordable[cfg.Rand.Intn(len(affordable))]
		if spawn(room, entry) {
			budget -= entry.ThreatCost
		}
	}

	for range cfg.HeartCount {
		if p, ok := pick(rooms[1+cfg.Rand.Intn(len(rooms)-1)]); ok {
			result.Hearts = append(result.Hearts, p)
		}
	}
	for range cfg.RockCount {
		if p, ok := pick(placeable[cfg.Rand.Intn(len(placeable))]); ok {
			result.Rocks = append(result.Rocks, p)
		}
	}
	return result
}

func affordableEnemies(table []EnemySpawnEntry, budget int) []EnemySpawnEntry {
	var out []EnemySpawnEntry
	for _, e := range table {
		if e.ThreatCost <= budget {
			out = append(out, e)
		}
	}
	return out
}

// cheapestEntry returns the entry with the lowest ThreatCost from a non-empty slice.
func cheapestEntry(entries []EnemySpawnEntry) EnemySpawnEntry {
	best := entries[0]
	for _, e := range entries[1:] {
		if e.ThreatCost < best.ThreatCost {
			best = e
		}
	}
	return best
}

// pickFreeInRoom tries a few random cells inside the room's inner area and
// falls back to a scan. ok is false when the inner area is full or empty.
func pickFreeInRoom(room gamemap.Rect, cfg *Config, occupied mapset.Set[gamemap.Point]) (gamemap.Point, bool) {
	x1, y1 := room.X1+1, room.Y1+1
	x2, y2 := room.X2-1, room.Y2-1
	if x1 > x2 || y1 > y2 {
		return gamemap.Point{}, false
	}
	const maxAttempts = 20
	for range maxAttempts {
		p := gamemap.Point{
			X: x1 + cfg.Rand.Intn(x2-x1+1),
			Y: y1 + cfg.Rand.Intn(y2-y1+1),
		}
		if !occupied.Has(p) {
			return p, true
		}
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if p := (gamemap.Point{X: x, Y: y}); !occupied.Has(p) {
				return p, true
			}
		}
	}
	return gamemap.Point{}, false
}
