package assets

// Kind names what a legend rune places on the map.
type Kind string

const (
	KindArrival    Kind = "arrival"    // players spawn here; the rune is the marker
	KindTarget     Kind = "target"     // plain floor a teleporter points at
	KindDoor       Kind = "door"       // closed until Signal is on
	KindDialogDoor Kind = "dialogdoor" // a door that explains itself while closed
	KindTeleporter Kind = "teleporter"
	KindChest      Kind = "chest"
	KindBomb       Kind = "bomb"
	KindPlate      Kind = "plate"
	KindWall       Kind = "wall" // elemental wall
	KindOrb        Kind = "orb"
	KindStaff      Kind = "staff"
	KindHeart      Kind = "heart"
	KindRock       Kind = "rock"
	KindGrenadier  Kind = "grenadier"
	KindHellSkull  Kind = "hellskull"
)

// Piece describes the actor a legend rune stands for. Only the fields that
// matter to Kind are read.
type Piece struct {
	Kind Kind
	// ID names the signal this piece produces (plates, orbs, staffs).
	ID      string
	Element string // "fire" or "water"
	// Signal gates doors, teleporters, chests and walls. Empty means always on.
	Signal  string
	Area    string // door destination
	Arrival rune   // arrival marker in Area
	Exit    bool   // the door ends the run
	Dialog  string
	Target  rune   // teleporter destination marker
	Item    string // chest contents
	Count   int
	Facing  string // enemies: up, right, down, left
}

// Gate combines named signals. Op is "and", "or" or "not" (one input).
type Gate struct {
	Op     string
	Inputs []string
}

// MazeDef asks for a generated area instead of a drawn layout.
type MazeDef struct {
	Width, Height int
	EnemyBudget   int
	Hearts        int
	Rocks         int
	// Next is where the maze exit leads; the run ends there when empty.
	Next string
	// Arrival marks both the maze start and the arrival cell in Next.
	Arrival rune
}

// AreaDef is one area of the game.
type AreaDef struct {
	Name   string
	Title  string
	Layout []string
	Legend map[rune]Piece
	Gates  map[string]Gate
	// Enter is the dialog shown the first time players arrive.
	Enter string
	Maze  *MazeDef
}

// Signals every area knows about.
const (
	SignalOn      = "on"
	SignalOff     = "off"
	SignalCleared = "cleared" // no enemy of the area is left alive
)

// Area names.
const (
	AreaCellar = "cellar"
	AreaOrbWay = "orbway"
	AreaMaze   = "maze"
	AreaArena  = "arena"
)

// StartArea is where a new run begins.
const StartArea = AreaCellar

// Areas lists every area by name.
var Areas = map[string]AreaDef{
	AreaCellar: {
		Name:  AreaCellar,
		Title: "The Cellar",
		Enter: "welcome",
		Layout: []string{
			"############",
			"#..........#",
			"#.1....C...#",
			"#..........#",
			"#.h......b.#",
			"#######R####",
			"      #.#   ",
			"      #D#   ",
			"      ###   ",
		},
		Legend: map[rune]Piece{
			'1': {Kind: KindArrival},
			'C': {Kind: KindChest, Item: "bomb", Count: 3, Dialog: "controls"},
			'h': {Kind: KindHeart},
			'b': {Kind: KindBomb},
			'R': {Kind: KindRock},
			'D': {Kind: KindDoor, Area: AreaOrbWay, Arrival: '1'},
		},
	},
	AreaOrbWay: {
		Name:  AreaOrbWay,
		Title: "The Orb Way",
		Layout: []string{
			"###################",
			"#.....#.....#.....#",
			"#..f..F..1..W..w..#",
			"#..s..#.....#..S..#",
			"#######.....#######",
			"#.t...d..p........#",
			"#..C..#.....#..T..#",
			"#######..E..#######",
			"###################",
		},
		Legend: map[rune]Piece{
			'1': {Kind: KindArrival},
			'f': {Kind: KindOrb, ID: "fire-orb", Element: "fire"},
			'w': {Kind: KindOrb, ID: "water-orb", Element: "water"},
			's': {Kind: KindStaff, ID: "fire-staff", Element: "fire"},
			'S': {Kind: KindStaff, ID: "water-staff", Element: "water"},
			'F': {Kind: KindWall, Element: "fire"},
			'W': {Kind: KindWall, Element: "water"},
			'p': {Kind: KindPlate, ID: "plate"},
			'd': {Kind: KindDoor, Signal: "plate"},
			'T': {Kind: KindTeleporter, Target: 't'},
			't': {Kind: KindTarget},
			'C': {Kind: KindChest, Item: "bomb", Count: 4},
			'E': {Kind: KindDialogDoor, Signal: "orbs", Dialog: "door.sealed", Area: AreaMaze, Arrival: '1'},
		},
		Gates: map[string]Gate{
			"orbs": {Op: "and", Inputs: []string{"fire-orb", "water-orb"}},
		},
	},
	AreaMaze: {
		Name:  AreaMaze,
		Title: "The Maze",
		Enter: "maze.enter",
		Maze: &MazeDef{
			Width:       48,
			Height:      28,
			EnemyBudget: 8,
			Hearts:      2,
			Rocks:       4,
			Next:        AreaArena,
			Arrival:     '1',
		},
	},
	AreaArena: {
		Name:  AreaArena,
		Title: "The Arena",
		Enter: "arena.enter",
		Layout: []string{
			"#####################",
			"#...................#",
			"#..1.......G.....h..#",
			"#...................#",
			"#....XXX.....XXX....#",
			"#...................#",
			"#..G.....H.....G....#",
			"#.......b...b.......#",
			"#.........x.........#",
			"#####################",
		},
		Legend: map[rune]Piece{
			'1': {Kind: KindArrival},
			'G': {Kind: KindGrenadier, Facing: "down"},
			'H': {Kind: KindHellSkull, Facing: "up"},
			'h': {Kind: KindHeart},
			'b': {Kind: KindBomb},
			'x': {Kind: KindDialogDoor, Signal: SignalCleared, Dialog: "door.arena", Exit: true},
		},
	},
}
