package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileVoid TileKind = iota
	TileWall
	TileImpassable
	TileFloor
	TileDoor
)

// Tile holds the kind and visibility state for one map cell.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
	Explored    bool
	Visible     bool
}

// MakeVoid returns an empty, unreachable tile outside the playable area.
func MakeVoid() Tile {
	return Tile{Kind: TileVoid, Walkable: false, Transparent: true}
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false, Transparent: false}
}

// MakeImpassable returns a tile that blocks movement but not sight (fences, water).
func MakeImpassable() Tile {
	return Tile{Kind: TileImpassable, Walkable: false, Transparent: true}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Transparent: true}
}

// MakeDoor returns the tile under a door actor: walkable, but it hides what
// lies beyond. The door actor itself decides whether the cell can be entered.
func MakeDoor() Tile {
	return Tile{Kind: TileDoor, Walkable: true, Transparent: false}
}
