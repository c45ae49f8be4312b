package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"
)

// enemy is the health and death handling shared by Grenadier and HellSkull.
type enemy struct {
	area.Movable
	env    *Env
	health int
	max    int
	immune int
	dying  int
	dead   bool
	feet   plateHandler
}

func newEnemy(env *Env, at gamemap.Point, o gamemap.Orientation, health int) enemy {
	return enemy{Movable: area.NewMovable(at, o), env: env, health: health, max: health}
}

// Health returns the remaining health points.
func (e *enemy) Health() int { return e.health }

// IsDying reports whether the enemy was killed and is fading out.
func (e *enemy) IsDying() bool { return e.dying > 0 || e.dead }

func (e *enemy) alive() bool { return !e.IsDying() }

// hurt applies dmg unless the enemy is immune right now.
func (e *enemy) hurt(dmg int, immune bool) bool {
	if !e.alive() || immune || e.immune > 0 || dmg <= 0 {
		return false
	}
	e.health -= dmg
	e.immune = EnemyImmuneFrames
	if e.health <= 0 {
		e.health = 0
		e.dying = EnemyDyingFrames
		e.ResetMotion()
	}
	return true
}

// tick runs the per-frame bookkeeping and reports whether the enemy may act.
func (e *enemy) tick() bool {
	if e.dead {
		return false
	}
	if e.dying > 0 {
		e.dying--
		if e.dying == 0 {
			e.die()
		}
		return false
	}
	if e.immune > 0 {
		e.immune--
	}
	return true
}

func (e *enemy) die() {
	e.dead = true
	at := e.Position()
	e.env.post(Event{Kind: EventEnemyKilled, At: at})
	if o := e.Owner(); o != nil {
		if e.env != nil && e.env.Rand != nil && e.env.Rand.Intn(3) == 0 {
			o.Register(NewHeart(e.env, at))
		}
	}
	e.Leave()
}

func (e *enemy) TakeCellSpace() bool      { return e.alive() }
func (e *enemy) IsCellInteractable() bool { return e.alive() }
func (e *enemy) IsViewInteractable() bool { return e.alive() }

func (e *enemy) WantsCellInteraction() bool { return e.alive() }
func (e *enemy) WantsViewInteraction() bool { return false }

func (e *enemy) Interact(other area.Interactable, isCell bool) {
	if isCell {
		other.AcceptInteraction(&e.feet, isCell)
	}
}

// plateHandler presses plates the holder stands on.
type plateHandler struct {
	NopVisitor
}

func (plateHandler) InteractWithPressurePlate(p *PressurePlate, isCell bool) {
	if isCell {
		p.Press()
	}
}
