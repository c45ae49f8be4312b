package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// HellSkullState is the HellSkull's behaviour.
type HellSkullState uint8

const (
	HellSkullCooling HellSkullState = iota
	HellSkullSpitting
)

// HellSkull never moves; it breathes a flame ahead every Cooldown frames.
// Fire does not hurt it.
type HellSkull struct {
	enemy
	Cooldown int
	state    HellSkullState
	timer    int
}

// NewHellSkull returns a skull facing o.
func NewHellSkull(env *Env, at gamemap.Point, o gamemap.Orientation) *HellSkull {
	return &HellSkull{
		enemy:    newEnemy(env, at, o, HellSkullHealth),
		Cooldown: HellSkullCooldown,
		timer:    HellSkullCooldown,
	}
}

// State returns the current behaviour.
func (s *HellSkull) State() HellSkullState { return s.state }

// Hurt damages the skull unless the damage is fire.
func (s *HellSkull) Hurt(kind DamageKind, dmg int) bool {
	return s.hurt(dmg, kind == DamageFire)
}

func (s *HellSkull) Update(float64) {
	if !s.tick() {
		return
	}
	switch s.state {
	case HellSkullCooling:
		s.timer--
		if s.timer <= 0 {
			s.state = HellSkullSpitting
		}
	case HellSkullSpitting:
		s.spit()
		s.state = HellSkullCooling
		s.timer = s.Cooldown
	}
}

func (s *HellSkull) spit() {
	o := s.Owner()
	if o == nil {
		return
	}
	ahead := s.Position().Jump(s.Orientation())
	f := NewFlame(s.env, ahead, s.Orientation())
	if o.CanEnter(f, []gamemap.Point{ahead}) {
		o.Register(f)
	}
}

func (s *HellSkull) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, s, isCell, func(gv Visitor) { gv.InteractWithHellSkull(s, isCell) })
}

func (s *HellSkull) Sprite() (Sprite, bool) {
	switch {
	case s.dead:
		return Sprite{}, false
	case s.IsDying():
		return Sprite{Glyph: "💀", Color: tcell.ColorGray, Depth: DepthCreature}, true
	}
	c := tcell.ColorDarkRed
	if s.state == HellSkullSpitting {
		c = tcell.ColorOrangeRed
	}
	return Sprite{Glyph: "☠️", Color: c, Depth: DepthCreature}, true
}
