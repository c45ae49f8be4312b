package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"
	"icoop/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Player is one of the cooperating heroes.
type Player struct {
	area.Movable
	env *Env

	Name       string
	Element    Element
	Controls   input.Controls
	Bindings   input.Bindings
	Inventory  Inventory
	MoveFrames int

	health    int
	maxHealth int
	immune    int
	dead      bool

	arrived   bool // finished a step this frame
	looking   bool // interact key this frame
	attacking bool // sword swing this frame

	hands playerHandler
}

// NewPlayer returns a player with full health and a sword.
func NewPlayer(env *Env, name string, e Element, controls input.Controls, b input.Bindings) *Player {
	p := &Player{
		Movable:    area.NewMovable(gamemap.Point{}, gamemap.Down),
		env:        env,
		Name:       name,
		Element:    e,
		Controls:   controls,
		Bindings:   b,
		MoveFrames: PlayerMoveFrames,
		health:     PlayerMaxHealth,
		maxHealth:  PlayerMaxHealth,
	}
	p.Inventory.Add(ItemSword, 1)
	p.hands.self = p
	return p
}

// Health returns current and maximum health.
func (p *Player) Health() (int, int) { return p.health, p.maxHealth }

// Dead reports whether the player ran out of health.
func (p *Player) Dead() bool { return p.dead }

// Immune reports whether the player is in its post-hit grace period.
func (p *Player) Immune() bool { return p.immune > 0 }

// Hurt deals dmg of the given kind. Fire never hurts the fire player.
func (p *Player) Hurt(kind DamageKind, dmg int) bool {
	if p.dead || p.immune > 0 || dmg <= 0 {
		return false
	}
	if kind == DamageFire && p.Element == ElementFire {
		return false
	}
	p.health = max(p.health-dmg, 0)
	p.immune = PlayerImmuneFrames
	p.env.post(Event{Kind: EventHurt, Player: p, At: p.Position(), Count: dmg})
	if p.health == 0 {
		p.dead = true
		p.ResetMotion()
		p.env.post(Event{Kind: EventPlayerDied, Player: p, At: p.Position()})
	}
	return true
}

// Heal restores up to n points; false if already at full health.
func (p *Player) Heal(n int) bool {
	if p.dead || p.health >= p.maxHealth {
		return false
	}
	p.health = min(p.health+n, p.maxHealth)
	return true
}

// Revive restores full health and clears transient state.
func (p *Player) Revive() {
	p.dead = false
	p.health = p.maxHealth
	p.immune = 0
	p.arrived, p.looking, p.attacking = false, false, false
	p.ResetMotion()
}

// Arrived reports whether the player completed a step this frame.
func (p *Player) Arrived() bool { return p.arrived }

func (p *Player) Update(float64) {
	p.arrived, p.looking, p.attacking = false, false, false
	if p.dead {
		return
	}
	if p.immune > 0 {
		p.immune--
	}
	p.arrived = p.UpdateMotion()
	if p.Controls == nil {
		return
	}
	b := p.Bindings
	if p.Controls.Pressed(b.SwitchItem) {
		p.Inventory.Cycle()
	}
	if p.Controls.Pressed(b.Interact) {
		p.looking = true
	}
	if p.Controls.Pressed(b.UseItem) {
		p.useItem()
	}
	p.steer()
}

// steer turns toward a held direction, then steps once already facing it.
func (p *Player) steer() {
	if p.IsMoving() {
		return
	}
	b := p.Bindings
	for _, d := range []struct {
		key input.Key
		o   gamemap.Orientation
	}{
		{b.Up, gamemap.Up},
		{b.Right, gamemap.Right},
		{b.Down, gamemap.Down},
		{b.Left, gamemap.Left},
	} {
		if !p.Controls.Down(d.key) {
			continue
		}
		if p.Orientation() != d.o {
			p.Orient(d.o)
			return
		}
		if !p.Move(p.MoveFrames) {
			p.bump()
		}
		return
	}
}

// bump lets whatever blocked a step react to it.
func (p *Player) bump() {
	o := p.Owner()
	if o == nil {
		return
	}
	for _, occ := range o.Occupants(p.Position().Jump(p.Orientation())) {
		occ.AcceptInteraction(&bumpHandler{self: p}, false)
	}
}

func (p *Player) useItem() {
	o := p.Owner()
	if o == nil {
		return
	}
	ahead := p.Position().Jump(p.Orientation())
	switch it := p.Inventory.Current(); it {
	case ItemSword:
		p.attacking = true
	case ItemBomb:
		bomb := NewArmedExplosive(p.env, ahead, BombFuseFrames)
		if o.CanEnter(bomb, []gamemap.Point{ahead}) && p.Inventory.Take(ItemBomb) {
			o.Register(bomb)
		}
	case ItemFireStaff, ItemWaterStaff:
		e := ElementFire
		if it == ItemWaterStaff {
			e = ElementWater
		}
		shot := NewProjectile(p.env, ahead, p.Orientation(), e)
		if o.CanEnter(shot, []gamemap.Point{ahead}) {
			o.Register(shot)
		}
	}
}

func (p *Player) TakeCellSpace() bool      { return !p.dead }
func (p *Player) IsCellInteractable() bool { return !p.dead }
func (p *Player) IsViewInteractable() bool { return !p.dead }

func (p *Player) WantsCellInteraction() bool { return !p.dead }
func (p *Player) WantsViewInteraction() bool { return !p.dead && (p.looking || p.attacking) }

func (p *Player) Interact(other area.Interactable, isCell bool) {
	other.AcceptInteraction(&p.hands, isCell)
}

func (p *Player) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, p, isCell, func(gv Visitor) { gv.InteractWithPlayer(p, isCell) })
}

func (p *Player) Sprite() (Sprite, bool) {
	if p.dead {
		return Sprite{Glyph: "🪦", Color: tcell.ColorGray, Depth: DepthCreature}, true
	}
	c := tcell.ColorOrangeRed
	g := "🧙"
	if p.Element == ElementWater {
		c = tcell.ColorDodgerBlue
		g = "🧜"
	}
	if p.immune > 0 && p.immune%4 < 2 {
		c = tcell.ColorWhite
	}
	return Sprite{Glyph: g, Color: c, Depth: DepthCreature}, true
}

// playerHandler is how a player acts on what it touches or faces.
type playerHandler struct {
	NopVisitor
	self *Player
}

func (h *playerHandler) InteractWithDoor(d *Door, isCell bool) {
	switch {
	case isCell && h.self.arrived:
		d.Pass(h.self)
	case !isCell && h.self.looking:
		d.Knock(h.self)
	}
}

func (h *playerHandler) InteractWithTeleporter(t *Teleporter, isCell bool) {
	if isCell && h.self.arrived {
		t.Teleport(h.self)
	}
}

func (h *playerHandler) InteractWithChest(c *Chest, isCell bool) {
	if !isCell && h.self.looking {
		c.Open(h.self)
	}
}

func (h *playerHandler) InteractWithPressurePlate(pp *PressurePlate, isCell bool) {
	if isCell {
		pp.Press()
	}
}

func (h *playerHandler) InteractWithElementalItem(i *ElementalItem, isCell bool) {
	switch {
	case isCell && i.Form == FormOrb:
		i.Collect(h.self)
	case !isCell && h.self.looking && i.Form == FormStaff:
		i.Collect(h.self)
	}
}

func (h *playerHandler) InteractWithHeart(ht *Heart, isCell bool) {
	if isCell {
		ht.Consume(h.self)
	}
}

func (h *playerHandler) InteractWithExplosive(e *Explosive, isCell bool) {
	if !isCell && h.self.attacking {
		e.Arm(0)
	}
}

func (h *playerHandler) InteractWithGrenadier(g *Grenadier, isCell bool) {
	if !isCell && h.self.attacking {
		g.Hurt(DamagePhysical, SwordDamage)
	}
}

func (h *playerHandler) InteractWithHellSkull(s *HellSkull, isCell bool) {
	if !isCell && h.self.attacking {
		s.Hurt(DamagePhysical, SwordDamage)
	}
}

// bumpHandler reacts to a player walking into something that stopped it.
type bumpHandler struct {
	NopVisitor
	self *Player
}

func (h *bumpHandler) InteractWithElementalWall(w *ElementalWall, _ bool) { w.Repel(h.self) }
