package generate

import "icoop/internal/gamemap"

// corridorBends lists the corners a corridor from a to b turns at, both
// ends included. Every leg between two bends is axis-aligned.
func corridorBends(a, b gamemap.Point, cfg *Config) []gamemap.Point {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		midY := (a.Y + b.Y) / 2
		return []gamemap.Point{a, {X: a.X, Y: midY}, {X: b.X, Y: midY}, b}
	case CorridorStraight:
		return []gamemap.Point{a, {X: b.X, Y: a.Y}, b}
	}
	if cfg.Rand.Intn(2) == 0 {
		return []gamemap.Point{a, {X: b.X, Y: a.Y}, b}
	}
	return []gamemap.Point{a, {X: a.X, Y: b.Y}, b}
}

// carveCorridor digs a tunnel from a to b in the configured style, wide
// enough for CorridorWidth players abreast.
func carveCorridor(gmap *gamemap.GameMap, a, b gamemap.Point, cfg *Config) {
	w := max(cfg.CorridorWidth, 1)
	bends := corridorBends(a, b, cfg)
	for i := 1; i < len(bends); i++ {
		carveLeg(gmap, bends[i-1], bends[i], w)
	}
}

// carveLeg digs the w-by-w brush along from..to. The extra lanes lie right
// of and below the centre line, so consecutive legs share a full square at
// each bend. The outer wall ring is never opened.
func carveLeg(gmap *gamemap.GameMap, from, to gamemap.Point, w int) {
	x0, x1 := min(from.X, to.X), max(from.X, to.X)+w-1
	y0, y1 := min(from.Y, to.Y), max(from.Y, to.Y)+w-1
	x0, y0 = max(x0, 1), max(y0, 1)
	x1, y1 = min(x1, gmap.Width-2), min(y1, gmap.Height-2)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			gmap.Set(gamemap.Point{X: x, Y: y}, gamemap.MakeFloor())
		}
	}
}
