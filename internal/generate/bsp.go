// Package generate carves procedural areas with binary space partitioning
// and decides where their enemies, hearts and rocks go.
package generate

import (
	"math/rand"

	"icoop/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// EnemyKind names what an enemy spawn turns into.
type EnemyKind uint8

const (
	EnemyGrenadier EnemyKind = iota
	EnemyHellSkull
)

func (k EnemyKind) String() string {
	if k == EnemyHellSkull {
		return "hellskull"
	}
	return "grenadier"
}

// EnemySpawnEntry is one possible enemy with its threat cost.
type EnemySpawnEntry struct {
	Kind       EnemyKind
	ThreatCost int
}

// Config drives the generation of one maze.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	CorridorStyle       CorridorStyle
	// CorridorWidth is how many players fit side by side in a corridor.
	CorridorWidth int
	EnemyBudget         int
	EnemyTable          []EnemySpawnEntry
	HeartCount          int
	RockCount           int
	Rand                *rand.Rand
}

// DefaultConfig returns the maze settings used by the game.
func DefaultConfig(seed int64) *Config {
	return &Config{
		MapWidth:    48,
		MapHeight:   28,
		MinLeafSize: 8,
		MaxLeafSize: 16,
		MinRoomSize: 4,
		RoomPadding:   1,
		CorridorWidth: 2,
		EnemyBudget:   8,
		EnemyTable: []EnemySpawnEntry{
			{Kind: EnemyGrenadier, ThreatCost: 2},
			{Kind: EnemyHellSkull, ThreatCost: 3},
		},
		HeartCount: 2,
		RockCount:  4,
		Rand:       rand.New(rand.NewSource(seed)),
	}
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

func (l *bspLeaf) leaf() bool { return l.left == nil && l.right == nil }

// split divides the leaf in two; false when it is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if !l.leaf() {
		return false
	}
	// Cut across the longer side when the leaf is clearly elongated.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	size := l.H
	if !splitH {
		size = l.W
	}
	lo, hi := cfg.MinLeafSize, size-cfg.MinLeafSize
	if size <= cfg.MinLeafSize*2 || lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms carves one room in every terminal leaf.
func (l *bspLeaf) createRooms(gmap *gamemap.GameMap, cfg *Config) {
	if !l.leaf() {
		l.left.createRooms(gmap, cfg)
		l.right.createRooms(gmap, cfg)
		return
	}
	pad := cfg.RoomPadding
	minSize := max(cfg.MinRoomSize, 3)
	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)

	rw := min(minSize+cfg.Rand.Intn(availW-minSize+1), l.W-2*pad)
	rh := min(minSize+cfg.Rand.Intn(availH-minSize+1), l.H-2*pad)
	rx := max(l.X+pad+cfg.Rand.Intn(max(1, l.W-rw-2*pad+1)), 1)
	ry := max(l.Y+pad+cfg.Rand.Intn(max(1, l.H-rh-2*pad+1)), 1)

	// Keep a one-tile wall border around the map.
	if rx+rw >= gmap.Width {
		rw = gmap.Width - rx - 1
	}
	if ry+rh >= gmap.Height {
		rh = gmap.Height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			gmap.Set(gamemap.Point{X: x, Y: y}, gamemap.MakeFloor())
		}
	}
	gmap.Rooms = append(gmap.Rooms, room)
}

// getRoom returns a room from this subtree, or nil.
func (l *bspLeaf) getRoom() *gamemap.Rect {
	if l.room != nil || l.leaf() {
		return l.room
	}
	if r := l.left.getRoom(); r != nil {
		return r
	}
	return l.right.getRoom()
}

// connectChildren carves a corridor between the two halves of every split.
func (l *bspLeaf) connectChildren(gmap *gamemap.GameMap, cfg *Config) {
	if l.leaf() {
		return
	}
	l.left.connectChildren(gmap, cfg)
	l.right.connectChildren(gmap, cfg)

	a, b := l.left.getRoom(), l.right.getRoom()
	if a == nil || b == nil {
		return
	}
	ax, ay := a.Center()
	bx, by := b.Center()
	carveCorridor(gmap, gamemap.Point{X: ax, Y: ay}, gamemap.Point{X: bx, Y: by}, cfg)
}

// Generate carves a maze and returns it with the players' start cell, the
// centre of the first room.
func Generate(cfg *Config) (*gamemap.GameMap, gamemap.Point) {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	root := &bspLeaf{W: cfg.MapWidth, H: cfg.MapHeight}

	leaves := []*bspLeaf{root}
	for splitAny := true; splitAny; {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if !leaf.leaf() {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(gmap, cfg)
	root.connectChildren(gmap, cfg)

	start := gamemap.Point{X: 1, Y: 1}
	if len(gmap.Rooms) > 0 {
		x, y := gmap.Rooms[0].Center()
		start = gamemap.Point{X: x, Y: y}
	}
	return gmap, start
}
