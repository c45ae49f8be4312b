package entity

import "icoop/internal/area"

// Visitor is the game's interaction visitor: one method per concrete
// interactable. Handlers embed NopVisitor and override what they care about.
type Visitor interface {
	area.Visitor
	InteractWithPlayer(p *Player, isCell bool)
	InteractWithDoor(d *Door, isCell bool)
	InteractWithTeleporter(t *Teleporter, isCell bool)
	InteractWithChest(c *Chest, isCell bool)
	InteractWithExplosive(e *Explosive, isCell bool)
	InteractWithFlame(f *Flame, isCell bool)
	InteractWithProjectile(p *Projectile, isCell bool)
	InteractWithPressurePlate(p *PressurePlate, isCell bool)
	InteractWithElementalWall(w *ElementalWall, isCell bool)
	InteractWithElementalItem(i *ElementalItem, isCell bool)
	InteractWithHeart(h *Heart, isCell bool)
	InteractWithRock(r *Rock, isCell bool)
	InteractWithGrenadier(g *Grenadier, isCell bool)
	InteractWithHellSkull(h *HellSkull, isCell bool)
}

// NopVisitor ignores every interaction.
type NopVisitor struct{}

func (NopVisitor) InteractWith(area.Interactable, bool)           {}
func (NopVisitor) InteractWithPlayer(*Player, bool)               {}
func (NopVisitor) InteractWithDoor(*Door, bool)                   {}
func (NopVisitor) InteractWithTeleporter(*Teleporter, bool)       {}
func (NopVisitor) InteractWithChest(*Chest, bool)                 {}
func (NopVisitor) InteractWithExplosive(*Explosive, bool)         {}
func (NopVisitor) InteractWithFlame(*Flame, bool)                 {}
func (NopVisitor) InteractWithProjectile(*Projectile, bool)       {}
func (NopVisitor) InteractWithPressurePlate(*PressurePlate, bool) {}
func (NopVisitor) InteractWithElementalWall(*ElementalWall, bool) {}
func (NopVisitor) InteractWithElementalItem(*ElementalItem, bool) {}
func (NopVisitor) InteractWithHeart(*Heart, bool)                 {}
func (NopVisitor) InteractWithRock(*Rock, bool)                   {}
func (NopVisitor) InteractWithGrenadier(*Grenadier, bool)         {}
func (NopVisitor) InteractWithHellSkull(*HellSkull, bool)         {}

// visit dispatches to fn when v is a game Visitor and falls back to the
// generic InteractWith otherwise.
func visit(v area.Visitor, self area.Interactable, isCell bool, fn func(Visitor)) {
	if gv, ok := v.(Visitor); ok {
		fn(gv)
		return
	}
	v.InteractWith(self, isCell)
}
