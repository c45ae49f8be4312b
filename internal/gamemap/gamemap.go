package gamemap

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains reports whether p lies inside r (inclusive edges).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap holds the tile grid of one area, and the room list when the area
// was generated.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Rect
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether p is within the map boundaries.
func (m *GameMap) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// At returns a pointer to the tile at p. Panics if out of bounds.
func (m *GameMap) At(p Point) *Tile {
	return &m.Tiles[p.Y][p.X]
}

// Set replaces the tile at p.
func (m *GameMap) Set(p Point, t Tile) {
	m.Tiles[p.Y][p.X] = t
}

// IsWalkable returns true when p is in bounds and walkable.
func (m *GameMap) IsWalkable(p Point) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.Tiles[p.Y][p.X].Walkable
}

// IsTransparent returns true when p is in bounds and transparent.
func (m *GameMap) IsTransparent(p Point) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.Tiles[p.Y][p.X].Transparent
}
