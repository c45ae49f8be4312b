package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// GrenadierState is the Grenadier's behaviour.
type GrenadierState uint8

const (
	GrenadierIdle GrenadierState = iota
	GrenadierAssault
	GrenadierProtect
)

func (s GrenadierState) String() string {
	switch s {
	case GrenadierAssault:
		return "assault"
	case GrenadierProtect:
		return "protect"
	}
	return "idle"
}

// Grenadier wanders until it sees a player, then chases it and drops bombs
// at close range. After each bomb it shields itself for a while.
type Grenadier struct {
	enemy
	state  GrenadierState
	target *Player
	timer  int
	eyes   grenadierEyes
}

// NewGrenadier returns an idle grenadier.
func NewGrenadier(env *Env, at gamemap.Point, o gamemap.Orientation) *Grenadier {
	g := &Grenadier{enemy: newEnemy(env, at, o, GrenadierHealth)}
	g.eyes.self = g
	return g
}

// State returns the current behaviour.
func (g *Grenadier) State() GrenadierState { return g.state }

// Target returns the player being chased, or nil.
func (g *Grenadier) Target() *Player { return g.target }

// Hurt damages the grenadier; it is immune while protecting.
func (g *Grenadier) Hurt(kind DamageKind, dmg int) bool {
	return g.hurt(dmg, g.state == GrenadierProtect)
}

func (g *Grenadier) Update(float64) {
	if !g.tick() {
		return
	}
	g.UpdateMotion()
	switch g.state {
	case GrenadierIdle:
		g.wander()
	case GrenadierAssault:
		g.assault()
	case GrenadierProtect:
		g.timer--
		if g.timer <= 0 {
			g.state = GrenadierAssault
			if !g.tracking() {
				g.calm()
			}
		}
	}
}

func (g *Grenadier) wander() {
	if g.IsMoving() {
		return
	}
	g.timer--
	if g.timer > 0 {
		return
	}
	g.timer = GrenadierIdleTurn
	g.Orient(gamemap.Orientations[g.env.Rand.Intn(len(gamemap.Orientations))])
	g.Move(GrenadierMoveFrames)
}

func (g *Grenadier) calm() {
	g.state = GrenadierIdle
	g.target = nil
	g.timer = GrenadierIdleTurn
}

// tracking reports whether the target can still be chased.
func (g *Grenadier) tracking() bool {
	t := g.target
	if t == nil || t.Dead() || t.Owner() == nil || t.Owner() != g.Owner() {
		return false
	}
	return g.Position().Manhattan(t.Position()) <= GrenadierLoseRange
}

func (g *Grenadier) assault() {
	if !g.tracking() {
		g.calm()
		return
	}
	if g.IsMoving() {
		return
	}
	here, there := g.Position(), g.target.Position()
	dx, dy := there.X-here.X, there.Y-here.Y
	dir, ok := gamemap.FromDelta(dx, dy)
	if !ok {
		return
	}
	if dir != g.Orientation() {
		g.Orient(dir)
		return
	}
	if here.Manhattan(there) <= GrenadierThrowRange && g.throw() {
		return
	}
	if g.Move(GrenadierMoveFrames) {
		return
	}
	// Blocked on the main axis: sidestep along the other one.
	alt, ok := gamemap.FromDelta(0, dy)
	if dir == gamemap.Up || dir == gamemap.Down {
		alt, ok = gamemap.FromDelta(dx, 0)
	}
	if ok {
		g.Orient(alt)
		g.Move(GrenadierMoveFrames)
	}
}

// throw drops an armed bomb on the free cell ahead and starts protecting.
func (g *Grenadier) throw() bool {
	o := g.Owner()
	ahead := g.Position().Jump(g.Orientation())
	if o == nil || !o.IsFree(ahead) {
		return false
	}
	bomb := NewArmedExplosive(g.env, ahead, BombFuseFrames)
	if !o.CanEnter(bomb, []gamemap.Point{ahead}) {
		return false
	}
	o.Register(bomb)
	g.state = GrenadierProtect
	g.timer = GrenadierProtectFrames
	return true
}

// FieldOfViewCells is the line of sight ahead, stopped by opaque tiles.
func (g *Grenadier) FieldOfViewCells() []gamemap.Point {
	o := g.Owner()
	if o == nil {
		return nil
	}
	var cells []gamemap.Point
	p := g.Position()
	for range GrenadierSight {
		p = p.Jump(g.Orientation())
		if !o.Map.IsTransparent(p) {
			break
		}
		cells = append(cells, p)
	}
	return cells
}

func (g *Grenadier) WantsViewInteraction() bool {
	return g.alive() && g.state != GrenadierProtect
}

func (g *Grenadier) Interact(other area.Interactable, isCell bool) {
	if isCell {
		g.enemy.Interact(other, isCell)
		return
	}
	other.AcceptInteraction(&g.eyes, isCell)
}

func (g *Grenadier) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, g, isCell, func(gv Visitor) { gv.InteractWithGrenadier(g, isCell) })
}

func (g *Grenadier) Sprite() (Sprite, bool) {
	switch {
	case g.dead:
		return Sprite{}, false
	case g.IsDying():
		return Sprite{Glyph: "💀", Color: tcell.ColorGray, Depth: DepthCreature}, true
	case g.state == GrenadierProtect:
		return Sprite{Glyph: "🛡️", Color: tcell.ColorSilver, Depth: DepthCreature}, true
	}
	return Sprite{Glyph: "👺", Color: tcell.ColorRed, Depth: DepthCreature}, true
}

// grenadierEyes spots players in the line of sight.
type grenadierEyes struct {
	NopVisitor
	self *Grenadier
}

func (h *grenadierEyes) InteractWithPlayer(p *Player, isCell bool) {
	g := h.self
	if isCell || p.Dead() {
		return
	}
	if g.target == nil || g.state == GrenadierIdle {
		g.target = p
	}
	if g.state == GrenadierIdle {
		g.state = GrenadierAssault
	}
}
