// Package render draws the game onto tcell screens.
package render

import (
	"sort"

	"icoop/assets"
	"icoop/internal/area"
	"icoop/internal/dialog"
	"icoop/internal/entity"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// View is everything one frame shows.
type View struct {
	Area     *area.Area
	Tiles    assets.Tiles
	Title    string
	Center   gamemap.Point
	Players  []*entity.Player
	Messages []string
	Dialog   *dialog.Dialog
}

// messageRows is how many log lines the HUD shows.
const messageRows = 2

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, camera: NewCamera(0, 0, 0, 0)}
}

// hudRows is the height of the HUD below the map for n players.
func hudRows(n int) int { return 1 + n + messageRows }

// Draw renders tiles, actors, the HUD and the dialog box, then shows the
// frame.
func (r *Renderer) Draw(v View) {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-hudRows(len(v.Players)), 0))
	r.camera.Center(v.Center.X, v.Center.Y)

	r.screen.Clear()
	if v.Area != nil {
		r.drawMap(v.Area.Map, v.Tiles)
		r.drawActors(v.Area)
	}
	r.drawHUD(v)
	if v.Dialog != nil && !v.Dialog.Done() {
		r.drawDialog(v.Dialog, len(v.Players))
	}
	r.screen.Show()
}

// WorldToScreen converts world coordinates to screen coordinates.
func (r *Renderer) WorldToScreen(p gamemap.Point) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(p.X, p.Y)
}

// drawMap renders the visible and explored tiles.
func (r *Renderer) drawMap(m *gamemap.GameMap, theme assets.Tiles) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := gamemap.Point{X: x, Y: y}
			tile := m.At(p)
			if tile.Kind == gamemap.TileVoid || !tile.Visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, tileGlyph(tile, theme), styleBase)
		}
	}
}

func tileGlyph(t *gamemap.Tile, theme assets.Tiles) string {
	switch t.Kind {
	case gamemap.TileWall:
		if t.Visible {
			return theme.Wall
		}
		return theme.DimWall
	case gamemap.TileImpassable:
		if t.Visible {
			return theme.Impassable
		}
		return theme.DimWall
	}
	if t.Visible {
		return theme.Floor
	}
	return theme.DimFloor
}

type placed struct {
	at     gamemap.Point
	sprite entity.Sprite
}

// drawActors renders every drawable actor standing on a visible tile,
// lowest depth first.
func (r *Renderer) drawActors(a *area.Area) {
	var items []placed
	for _, act := range a.Actors() {
		d, ok := act.(entity.Drawable)
		if !ok {
			continue
		}
		pos, ok := act.(interface{ Position() gamemap.Point })
		if !ok {
			continue
		}
		s, ok := d.Sprite()
		if !ok {
			continue
		}
		at := pos.Position()
		if !a.Map.InBounds(at) || !a.Map.At(at).Visible {
			continue
		}
		items = append(items, placed{at: at, sprite: s})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].sprite.Depth < items[j].sprite.Depth })

	for _, it := range items {
		sx, sy, onScreen := r.camera.WorldToScreen(it.at.X, it.at.Y)
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, it.sprite.Glyph, styleBase.Foreground(it.sprite.Color))
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < 2 {
		// Keep the grid two columns wide.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes s from column x and returns the column after it.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if x >= w {
			break
		}
		rw := runewidth.RuneWidth(ch)
		if rw == 0 {
			continue
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += rw
	}
	return x
}
