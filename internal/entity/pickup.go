package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Heart heals a hurt player who steps on it.
type Heart struct {
	prop
	Amount int
}

// NewHeart returns a heart restoring HeartHealing points.
func NewHeart(env *Env, at gamemap.Point) *Heart {
	return &Heart{prop: newProp(env, at), Amount: HeartHealing}
}

func (h *Heart) IsViewInteractable() bool { return false }

func (h *Heart) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, h, isCell, func(gv Visitor) { gv.InteractWithHeart(h, isCell) })
}

// Consume heals p and removes the heart. Players at full health leave it.
func (h *Heart) Consume(p *Player) bool {
	if !p.Heal(h.Amount) {
		return false
	}
	h.env.post(Event{Kind: EventPickup, Player: p, At: h.Position(), Item: ItemHeart, Count: 1})
	h.Leave()
	return true
}

func (h *Heart) Sprite() (Sprite, bool) {
	return Sprite{Glyph: "❤️", Color: tcell.ColorRed, Depth: DepthItem}, true
}

// Rock blocks a cell until an explosion destroys it.
type Rock struct {
	prop
}

// NewRock returns a rock.
func NewRock(env *Env, at gamemap.Point) *Rock {
	return &Rock{prop: newProp(env, at)}
}

func (r *Rock) TakeCellSpace() bool                { return true }
func (r *Rock) BlocksEntry(area.Interactable) bool { return true }
func (r *Rock) IsCellInteractable() bool           { return false }

func (r *Rock) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, r, isCell, func(gv Visitor) { gv.InteractWithRock(r, isCell) })
}

// Shatter removes the rock.
func (r *Rock) Shatter() { r.Leave() }

func (r *Rock) Sprite() (Sprite, bool) {
	return Sprite{Glyph: "🪨", Color: tcell.ColorGray, Depth: DepthObject}, true
}
