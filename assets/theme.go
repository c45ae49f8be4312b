package assets

// Tiles holds the glyphs used to draw one area's terrain. Emoji keep their
// own colours in most terminals, so explored-but-dark cells use separate
// glyphs instead of a dimmed foreground.
type Tiles struct {
	Wall       string
	Floor      string
	Impassable string
	DimWall    string
	DimFloor   string
}

// DefaultTiles is used for areas without a theme of their own.
var DefaultTiles = Tiles{
	Wall:       "🧱",
	Floor:      "⬛",
	Impassable: "🪨",
	DimWall:    "🌑",
	DimFloor:   "🔲",
}

// Themes maps area names to their tile sets.
var Themes = map[string]Tiles{
	// Damp stone and barrels.
	AreaCellar: {
		Wall:       "🧱",
		Floor:      "🟫",
		Impassable: "🛢️",
		DimWall:    "🌑",
		DimFloor:   "🔲",
	},
	// Old temple of the two elements.
	AreaOrbWay: {
		Wall:       "🗿",
		Floor:      "⬜",
		Impassable: "🏺",
		DimWall:    "🌑",
		DimFloor:   "🔲",
	},
	// Overgrown hedges.
	AreaMaze: {
		Wall:       "🌳",
		Floor:      "🟩",
		Impassable: "🌵",
		DimWall:    "🌑",
		DimFloor:   "🔲",
	},
	// Volcanic pit.
	AreaArena: {
		Wall:       "🌋",
		Floor:      "🟥",
		Impassable: "🔥",
		DimWall:    "🌑",
		DimFloor:   "🔲",
	},
}

// ThemeOf returns the tiles of the named area.
func ThemeOf(area string) Tiles {
	if t, ok := Themes[area]; ok {
		return t
	}
	return DefaultTiles
}
