package area

import "icoop/internal/gamemap"

// Base carries what every area entity has: an owner area, an ID, a main cell
// and a facing. Game types embed it.
type Base struct {
	owner       *Area
	id          ActorID
	pos         gamemap.Point
	orientation gamemap.Orientation
}

// NewBase returns a detached Base at pos facing o.
func NewBase(pos gamemap.Point, o gamemap.Orientation) Base {
	return Base{pos: pos, orientation: o}
}

func (b *Base) attach(a *Area, id ActorID) {
	b.owner = a
	b.id = id
}

func (b *Base) detach(a *Area) {
	if b.owner == a {
		b.owner = nil
		b.id = NoActor
	}
}

// Owner returns the area the entity is registered in, or nil.
func (b *Base) Owner() *Area { return b.owner }

// ID returns the entity's ID in its owner area.
func (b *Base) ID() ActorID { return b.id }

// Position returns the entity's main cell.
func (b *Base) Position() gamemap.Point { return b.pos }

// Orientation returns the entity's facing.
func (b *Base) Orientation() gamemap.Orientation { return b.orientation }

// SetOrientation turns the entity.
func (b *Base) SetOrientation(o gamemap.Orientation) { b.orientation = o }

// SetPosition moves the entity to p without animation and re-indexes its
// cells in the owner area.
func (b *Base) SetPosition(p gamemap.Point) {
	b.pos = p
	if b.owner != nil {
		b.owner.reindex(b.id)
	}
}

// CurrentCells returns the cells the entity stands on.
func (b *Base) CurrentCells() []gamemap.Point { return []gamemap.Point{b.pos} }

// FieldOfViewCells returns the cell directly in front of the entity.
func (b *Base) FieldOfViewCells() []gamemap.Point {
	return []gamemap.Point{b.pos.Jump(b.orientation)}
}

// Leave queues the entity for removal from its owner area.
func (b *Base) Leave() {
	if b.owner != nil {
		b.owner.unregisterID(b.id)
	}
}

// Movable is a Base that moves cell to cell over a number of frames. The
// target cell is reserved when the move starts; the origin is released when
// it completes.
type Movable struct {
	Base
	moving     bool
	target     gamemap.Point
	framesLeft int
}

// NewMovable returns a detached Movable at pos facing o.
func NewMovable(pos gamemap.Point, o gamemap.Orientation) Movable {
	return Movable{Base: NewBase(pos, o)}
}

// IsMoving reports whether a displacement is under way.
func (m *Movable) IsMoving() bool { return m.moving }

// Target returns the cell being moved to; only meaningful while moving.
func (m *Movable) Target() gamemap.Point { return m.target }

// Orient turns the entity. Refused while moving.
func (m *Movable) Orient(o gamemap.Orientation) bool {
	if m.moving {
		return false
	}
	m.orientation = o
	return true
}

// Move starts a displacement of one cell in the current facing, lasting
// frames updates. It returns false if already moving, detached, or if the
// target cell cannot be entered.
func (m *Movable) Move(frames int) bool {
	if m.moving || m.owner == nil {
		return false
	}
	to := m.pos.Jump(m.orientation)
	if !m.owner.enterCells(m.id, []gamemap.Point{to}) {
		return false
	}
	if frames < 1 {
		frames = 1
	}
	m.moving = true
	m.target = to
	m.framesLeft = frames
	return true
}

// UpdateMotion advances the displacement by one frame. It returns true on
// the frame the entity arrives.
func (m *Movable) UpdateMotion() bool {
	if !m.moving {
		return false
	}
	m.framesLeft--
	if m.framesLeft > 0 {
		return false
	}
	from := m.pos
	m.pos = m.target
	m.moving = false
	if m.owner != nil {
		m.owner.leaveCells(m.id, []gamemap.Point{from})
	}
	return true
}

// ResetMotion cancels a displacement and releases the reserved cell.
func (m *Movable) ResetMotion() {
	if !m.moving {
		return
	}
	m.moving = false
	if m.owner != nil && m.target != m.pos {
		m.owner.leaveCells(m.id, []gamemap.Point{m.target})
	}
}

// SetPosition cancels any displacement and teleports the entity to p.
func (m *Movable) SetPosition(p gamemap.Point) {
	m.ResetMotion()
	m.Base.SetPosition(p)
}
