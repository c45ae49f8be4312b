package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Chest is a container opened by a player's interaction. Lock must be on
// for it to open; opening is final.
type Chest struct {
	prop
	Lock         Logic
	Contents     Item
	Count        int
	LockedDialog string
	OpenedDialog string

	open bool
}

// NewChest returns a closed chest holding count items.
func NewChest(env *Env, at gamemap.Point, contents Item, count int, lock Logic) *Chest {
	if lock == nil {
		lock = On
	}
	return &Chest{
		prop:         newProp(env, at),
		Lock:         lock,
		Contents:     contents,
		Count:        count,
		LockedDialog: "chest.locked",
		OpenedDialog: "chest.opened",
	}
}

// IsOpen reports whether the chest has been opened.
func (c *Chest) IsOpen() bool { return c.open }

func (c *Chest) TakeCellSpace() bool                { return true }
func (c *Chest) BlocksEntry(area.Interactable) bool { return true }

func (c *Chest) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, c, isCell, func(gv Visitor) { gv.InteractWithChest(c, isCell) })
}

// Open tries to open the chest for p and hands over its contents.
func (c *Chest) Open(p *Player) bool {
	if c.open {
		return false
	}
	if !c.Lock.IsOn() {
		c.env.post(Event{Kind: EventDialog, Player: p, Dialog: c.LockedDialog})
		return false
	}
	c.open = true
	if c.Count > 0 {
		p.Inventory.Add(c.Contents, c.Count)
	}
	c.env.post(Event{Kind: EventChestOpened, Player: p, At: c.Position(), Item: c.Contents, Count: c.Count})
	c.env.post(Event{Kind: EventDialog, Player: p, Dialog: c.OpenedDialog})
	return true
}

func (c *Chest) Sprite() (Sprite, bool) {
	if c.open {
		return Sprite{Glyph: "📭", Color: tcell.ColorOlive, Depth: DepthObject}, true
	}
	return Sprite{Glyph: "🧰", Color: tcell.ColorYellow, Depth: DepthObject}, true
}
