package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Teleporter moves a player who steps on it to Target in the same area.
type Teleporter struct {
	prop
	Target gamemap.Point
	Signal Logic

	cooldown int
}

// NewTeleporter returns a pad at at leading to target.
func NewTeleporter(env *Env, at, target gamemap.Point, signal Logic) *Teleporter {
	if signal == nil {
		signal = On
	}
	return &Teleporter{prop: newProp(env, at), Target: target, Signal: signal}
}

// Active reports whether the pad can be used this frame.
func (t *Teleporter) Active() bool { return t.cooldown == 0 && t.Signal.IsOn() }

func (t *Teleporter) Update(float64) {
	if t.cooldown > 0 {
		t.cooldown--
	}
}

func (t *Teleporter) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, t, isCell, func(gv Visitor) { gv.InteractWithTeleporter(t, isCell) })
}

// Teleport sends p to the target cell. It fails when the pad is inactive or
// the target cannot be entered.
func (t *Teleporter) Teleport(p *Player) bool {
	o := t.Owner()
	if o == nil || !t.Active() {
		return false
	}
	if !o.CanEnter(p, []gamemap.Point{t.Target}) {
		return false
	}
	p.SetPosition(t.Target)
	t.cooldown = TeleporterCooldown
	for _, occ := range o.Occupants(t.Target) {
		if other, ok := occ.(*Teleporter); ok {
			other.cooldown = TeleporterCooldown
		}
	}
	return true
}

func (t *Teleporter) Sprite() (Sprite, bool) {
	c := tcell.ColorPurple
	if !t.Active() {
		c = tcell.ColorGray
	}
	return Sprite{Glyph: "🌀", Color: c, Depth: DepthFloor}, true
}
