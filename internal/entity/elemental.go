package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// ElementalWall lets only players of its element through while Signal is
// on. Players of any other element are blocked and hurt when they push
// against it. While off it is inert and invisible.
type ElementalWall struct {
	prop
	Element Element
	Signal  Logic
}

// NewElementalWall returns a wall of element e.
func NewElementalWall(env *Env, at gamemap.Point, e Element, signal Logic) *ElementalWall {
	if signal == nil {
		signal = On
	}
	return &ElementalWall{prop: newProp(env, at), Element: e, Signal: signal}
}

// Passes reports whether mover may cross the wall right now.
func (w *ElementalWall) Passes(mover area.Interactable) bool {
	if !w.Signal.IsOn() {
		return true
	}
	p, ok := mover.(*Player)
	return ok && p.Element == w.Element
}

func (w *ElementalWall) BlocksEntry(mover area.Interactable) bool { return !w.Passes(mover) }
func (w *ElementalWall) TakeCellSpace() bool                      { return w.Signal.IsOn() }
func (w *ElementalWall) IsCellInteractable() bool                 { return false }
func (w *ElementalWall) IsViewInteractable() bool                 { return w.Signal.IsOn() }

func (w *ElementalWall) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, w, isCell, func(gv Visitor) { gv.InteractWithElementalWall(w, isCell) })
}

// Repel hurts p if the wall does not let it through.
func (w *ElementalWall) Repel(p *Player) bool {
	if w.Passes(p) {
		return false
	}
	return p.Hurt(DamageOf(w.Element), 1)
}

func (w *ElementalWall) Sprite() (Sprite, bool) {
	if !w.Signal.IsOn() {
		return Sprite{}, false
	}
	if w.Element == ElementWater {
		return Sprite{Glyph: "🌊", Color: tcell.ColorBlue, Depth: DepthObject}, true
	}
	return Sprite{Glyph: "🔥", Color: tcell.ColorOrangeRed, Depth: DepthObject}, true
}

// ItemForm distinguishes elemental orbs from staffs.
type ItemForm uint8

const (
	FormOrb ItemForm = iota
	FormStaff
)

// ElementalItem is an orb or staff only a player of the same element can
// collect. Once collected it reads as an on signal.
type ElementalItem struct {
	prop
	Form        ItemForm
	Element     Element
	WrongDialog string

	collected bool
	warned    bool
}

// NewOrb returns an orb collected by stepping on it.
func NewOrb(env *Env, at gamemap.Point, e Element) *ElementalItem {
	return &ElementalItem{prop: newProp(env, at), Form: FormOrb, Element: e, WrongDialog: "orb.wrong"}
}

// NewStaff returns a staff collected by interacting with it.
func NewStaff(env *Env, at gamemap.Point, e Element) *ElementalItem {
	return &ElementalItem{prop: newProp(env, at), Form: FormStaff, Element: e, WrongDialog: "staff.wrong"}
}

// IsOn reports whether the item was collected.
func (i *ElementalItem) IsOn() bool { return i.collected }

func (i *ElementalItem) TakeCellSpace() bool { return i.Form == FormStaff }

func (i *ElementalItem) BlocksEntry(mover area.Interactable) bool {
	return i.Form == FormStaff && mover != nil && mover.TakeCellSpace()
}

func (i *ElementalItem) IsCellInteractable() bool { return i.Form == FormOrb }
func (i *ElementalItem) IsViewInteractable() bool { return i.Form == FormStaff }

func (i *ElementalItem) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, i, isCell, func(gv Visitor) { gv.InteractWithElementalItem(i, isCell) })
}

// Collect gives the item to p when elements match. A mismatch shows the
// wrong-element dialog the first time only.
func (i *ElementalItem) Collect(p *Player) bool {
	if i.collected {
		return false
	}
	if p.Element != i.Element {
		if !i.warned && i.WrongDialog != "" {
			i.warned = true
			i.env.post(Event{Kind: EventDialog, Player: p, Dialog: i.WrongDialog})
		}
		return false
	}
	i.collected = true
	item := ItemOrb
	if i.Form == FormStaff {
		item = StaffOf(i.Element)
		p.Inventory.Add(item, 1)
	}
	i.env.post(Event{Kind: EventPickup, Player: p, At: i.Position(), Item: item, Count: 1})
	i.Leave()
	return true
}

func (i *ElementalItem) Sprite() (Sprite, bool) {
	c := tcell.ColorOrangeRed
	if i.Element == ElementWater {
		c = tcell.ColorDodgerBlue
	}
	g := "🔮"
	if i.Form == FormStaff {
		g = "🪄"
	}
	return Sprite{Glyph: g, Color: c, Depth: DepthItem}, true
}
