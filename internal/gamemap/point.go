package gamemap

// Point is a discrete cell coordinate. Y grows downward, matching the
// terminal row order.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Jump returns the neighbouring cell in direction o.
func (p Point) Jump(o Orientation) Point {
	dx, dy := o.Delta()
	return p.Add(dx, dy)
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Neighbours8 returns the eight cells surrounding p, row by row.
func (p Point) Neighbours8() []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, p.Add(dx, dy))
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Orientation is one of the four cardinal facings.
type Orientation uint8

const (
	Up Orientation = iota
	Right
	Down
	Left
)

// Orientations lists all facings clockwise from Up.
var Orientations = [4]Orientation{Up, Right, Down, Left}

// Delta returns the unit step for o.
func (o Orientation) Delta() (int, int) {
	switch o {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the facing 180 degrees from o.
func (o Orientation) Opposite() Orientation { return (o + 2) % 4 }

// TurnRight returns the facing 90 degrees clockwise from o.
func (o Orientation) TurnRight() Orientation { return (o + 1) % 4 }

// TurnLeft returns the facing 90 degrees counter-clockwise from o.
func (o Orientation) TurnLeft() Orientation { return (o + 3) % 4 }

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "?"
}

// FromDelta picks the facing that best matches (dx, dy), preferring the
// horizontal axis on ties. ok is false for a zero vector.
func FromDelta(dx, dy int) (o Orientation, ok bool) {
	if dx == 0 && dy == 0 {
		return Up, false
	}
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return Right, true
		}
		return Left, true
	}
	if dy > 0 {
		return Down, true
	}
	return Up, true
}
