package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// missile is the shared motion of flames and projectiles: advance one cell
// every step frames, die when blocked or after the given number of frames
// or cells.
type missile struct {
	area.Movable
	env      *Env
	step     int
	frames   int // frames left, <0 means unlimited
	cells    int // cells left, <0 means unlimited
	finished bool
}

func (m *missile) TakeCellSpace() bool      { return false }
func (m *missile) IsCellInteractable() bool { return !m.finished }
func (m *missile) IsViewInteractable() bool { return false }

func (m *missile) WantsCellInteraction() bool { return !m.finished }
func (m *missile) WantsViewInteraction() bool { return false }

func (m *missile) finish() {
	if m.finished {
		return
	}
	m.finished = true
	m.ResetMotion()
	m.Leave()
}

// advance runs one frame of motion and reports whether the missile is still
// alive.
func (m *missile) advance() bool {
	if m.finished {
		return false
	}
	if m.frames >= 0 {
		if m.frames == 0 {
			m.finish()
			return false
		}
		m.frames--
	}
	if m.UpdateMotion() && m.cells > 0 {
		m.cells--
	}
	if m.IsMoving() {
		return true
	}
	if m.cells == 0 {
		m.finish()
		return false
	}
	if !m.Move(m.step) {
		m.finish()
		return false
	}
	return true
}

// Projectile is a staff shot. Fire shots light bombs, water shots put out
// flames; both hurt the first enemy they reach.
type Projectile struct {
	missile
	Element Element
	Damage  int
	handler projectileHandler
}

// NewProjectile returns a shot at at heading o.
func NewProjectile(env *Env, at gamemap.Point, o gamemap.Orientation, e Element) *Projectile {
	p := &Projectile{
		missile: missile{
			Movable: area.NewMovable(at, o),
			env:     env,
			step:    ProjectileStep,
			frames:  -1,
			cells:   ProjectileRange,
		},
		Element: e,
		Damage:  StaffDamage,
	}
	p.handler.self = p
	return p
}

func (p *Projectile) Update(float64) { p.advance() }

func (p *Projectile) Interact(other area.Interactable, isCell bool) {
	other.AcceptInteraction(&p.handler, isCell)
}

func (p *Projectile) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, p, isCell, func(gv Visitor) { gv.InteractWithProjectile(p, isCell) })
}

func (p *Projectile) Sprite() (Sprite, bool) {
	if p.finished {
		return Sprite{}, false
	}
	if p.Element == ElementWater {
		return Sprite{Glyph: "💧", Color: tcell.ColorAqua, Depth: DepthEffect}, true
	}
	return Sprite{Glyph: "☄️", Color: tcell.ColorOrangeRed, Depth: DepthEffect}, true
}

type projectileHandler struct {
	NopVisitor
	self *Projectile
}

func (h *projectileHandler) InteractWithGrenadier(g *Grenadier, isCell bool) {
	if !isCell || h.self.finished {
		return
	}
	g.Hurt(DamageOf(h.self.Element), h.self.Damage)
	h.self.finish()
}

func (h *projectileHandler) InteractWithHellSkull(s *HellSkull, isCell bool) {
	if !isCell || h.self.finished {
		return
	}
	s.Hurt(DamageOf(h.self.Element), h.self.Damage)
	h.self.finish()
}

func (h *projectileHandler) InteractWithExplosive(e *Explosive, isCell bool) {
	if !isCell || h.self.finished || h.self.Element != ElementFire {
		return
	}
	e.Arm(0)
	h.self.finish()
}

func (h *projectileHandler) InteractWithFlame(f *Flame, isCell bool) {
	if !isCell || h.self.finished || h.self.Element != ElementWater {
		return
	}
	f.Extinguish()
	h.self.finish()
}

// Flame is the breath of a HellSkull.
type Flame struct {
	missile
	handler flameHandler
}

// NewFlame returns a flame at at heading o.
func NewFlame(env *Env, at gamemap.Point, o gamemap.Orientation) *Flame {
	f := &Flame{missile: missile{
		Movable: area.NewMovable(at, o),
		env:     env,
		step:    FlameStep,
		frames:  FlameLifetime,
		cells:   -1,
	}}
	f.handler.self = f
	return f
}

func (f *Flame) Update(float64) { f.advance() }

// Extinguish removes the flame.
func (f *Flame) Extinguish() { f.finish() }

// Alive reports whether the flame still burns.
func (f *Flame) Alive() bool { return !f.finished }

func (f *Flame) Interact(other area.Interactable, isCell bool) {
	other.AcceptInteraction(&f.handler, isCell)
}

func (f *Flame) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, f, isCell, func(gv Visitor) { gv.InteractWithFlame(f, isCell) })
}

func (f *Flame) Sprite() (Sprite, bool) {
	if f.finished {
		return Sprite{}, false
	}
	return Sprite{Glyph: "🔥", Color: tcell.ColorOrange, Depth: DepthEffect}, true
}

type flameHandler struct {
	NopVisitor
	self *Flame
}

func (h *flameHandler) InteractWithPlayer(p *Player, isCell bool) {
	if isCell && !h.self.finished {
		p.Hurt(DamageFire, FlameDamage)
	}
}

func (h *flameHandler) InteractWithExplosive(e *Explosive, isCell bool) {
	if isCell && !h.self.finished {
		e.Arm(0)
	}
}
