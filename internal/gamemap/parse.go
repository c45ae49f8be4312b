package gamemap

import (
	"errors"
	"fmt"
)

// ErrEmptyLayout is returned by Parse for a layout with no cells.
var ErrEmptyLayout = errors.New("empty layout")

// Marker is a non-terrain rune found in a layout together with its cell.
type Marker struct {
	Rune rune
	At   Point
}

// Parse builds a map from ASCII rows. Terrain runes are '#' (wall), '.'
// (floor), 'X' (impassable) and ' ' (void); every other rune becomes a floor
// cell and is reported as a marker, in reading order. Short rows are padded
// with void.
func Parse(rows []string) (*GameMap, []Marker, error) {
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	if len(rows) == 0 || width == 0 {
		return nil, nil, ErrEmptyLayout
	}

	m := New(width, len(rows))
	var markers []Marker
	for y, row := range rows {
		runes := []rune(row)
		for x := 0; x < width; x++ {
			p := Point{X: x, Y: y}
			if x >= len(runes) {
				m.Set(p, MakeVoid())
				continue
			}
			switch r := runes[x]; r {
			case '#':
				m.Set(p, MakeWall())
			case '.':
				m.Set(p, MakeFloor())
			case 'X':
				m.Set(p, MakeImpassable())
			case ' ':
				m.Set(p, MakeVoid())
			default:
				if r < ' ' {
					return nil, nil, fmt.Errorf("row %d col %d: control character %q", y, x, r)
				}
				m.Set(p, MakeFloor())
				markers = append(markers, Marker{Rune: r, At: p})
			}
		}
	}
	return m, markers, nil
}
