package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// ExplosiveState is the bomb lifecycle.
type ExplosiveState uint8

const (
	ExplosiveIdle ExplosiveState = iota
	ExplosiveArmed
	ExplosiveExploding
	ExplosiveDone
)

// Explosive is a bomb. Once armed its fuse counts down; it then explodes
// for one frame over its cell and the eight around it.
type Explosive struct {
	prop
	fuse  int
	state ExplosiveState
	blast blastHandler
}

// NewExplosive returns an idle bomb.
func NewExplosive(env *Env, at gamemap.Point) *Explosive {
	e := &Explosive{prop: newProp(env, at)}
	e.blast.self = e
	return e
}

// NewArmedExplosive returns a bomb whose fuse is already burning.
func NewArmedExplosive(env *Env, at gamemap.Point, fuse int) *Explosive {
	e := NewExplosive(env, at)
	e.Arm(fuse)
	return e
}

// State returns the current lifecycle state.
func (e *Explosive) State() ExplosiveState { return e.state }

// Fuse returns the frames left before the explosion.
func (e *Explosive) Fuse() int { return e.fuse }

// Arm lights the fuse. Re-arming only ever shortens it.
func (e *Explosive) Arm(fuse int) {
	switch e.state {
	case ExplosiveIdle:
		e.state = ExplosiveArmed
		e.fuse = fuse
	case ExplosiveArmed:
		e.fuse = min(e.fuse, fuse)
	}
}

func (e *Explosive) Update(float64) {
	switch e.state {
	case ExplosiveArmed:
		e.fuse--
		if e.fuse <= 0 {
			e.state = ExplosiveExploding
			e.env.post(Event{Kind: EventExplosion, At: e.Position()})
		}
	case ExplosiveExploding:
		e.state = ExplosiveDone
		e.Leave()
	}
}

func (e *Explosive) TakeCellSpace() bool { return e.state < ExplosiveExploding }

// BlocksEntry lets flames and shots reach the bomb.
func (e *Explosive) BlocksEntry(mover area.Interactable) bool {
	return e.state < ExplosiveExploding && (mover == nil || mover.TakeCellSpace())
}

func (e *Explosive) IsCellInteractable() bool { return e.state < ExplosiveExploding }
func (e *Explosive) IsViewInteractable() bool { return e.state < ExplosiveExploding }

// FieldOfViewCells is the blast area.
func (e *Explosive) FieldOfViewCells() []gamemap.Point {
	return append(e.Position().Neighbours8(), e.Position())
}

func (e *Explosive) WantsCellInteraction() bool { return false }
func (e *Explosive) WantsViewInteraction() bool { return e.state == ExplosiveExploding }

func (e *Explosive) Interact(other area.Interactable, isCell bool) {
	other.AcceptInteraction(&e.blast, isCell)
}

func (e *Explosive) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, e, isCell, func(gv Visitor) { gv.InteractWithExplosive(e, isCell) })
}

func (e *Explosive) Sprite() (Sprite, bool) {
	switch e.state {
	case ExplosiveExploding:
		return Sprite{Glyph: "💥", Color: tcell.ColorOrange, Depth: DepthEffect}, true
	case ExplosiveDone:
		return Sprite{}, false
	}
	c := tcell.ColorWhite
	if e.state == ExplosiveArmed && e.fuse%6 < 3 {
		c = tcell.ColorRed
	}
	return Sprite{Glyph: "💣", Color: c, Depth: DepthObject}, true
}

// blastHandler applies an explosion to whatever lies in the blast area.
type blastHandler struct {
	NopVisitor
	self *Explosive
}

func (h *blastHandler) InteractWithPlayer(p *Player, _ bool) {
	p.Hurt(DamageExplosion, ExplosionDamage)
}

func (h *blastHandler) InteractWithRock(r *Rock, _ bool) { r.Shatter() }

func (h *blastHandler) InteractWithExplosive(e *Explosive, _ bool) { e.Arm(0) }

func (h *blastHandler) InteractWithGrenadier(g *Grenadier, _ bool) {
	g.Hurt(DamageExplosion, ExplosionDamage)
}

func (h *blastHandler) InteractWithHellSkull(s *HellSkull, _ bool) {
	s.Hurt(DamageExplosion, ExplosionDamage)
}
