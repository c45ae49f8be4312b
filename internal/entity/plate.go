package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// PressurePlate is on while something stands on it and for Hold frames
// after it was last pressed.
type PressurePlate struct {
	prop
	Hold int

	pressed   bool
	pressedAt uint64
}

// NewPressurePlate returns a released plate.
func NewPressurePlate(env *Env, at gamemap.Point) *PressurePlate {
	return &PressurePlate{prop: newProp(env, at), Hold: PlateHoldFrames}
}

// Press records a press in the current frame.
func (p *PressurePlate) Press() {
	if o := p.Owner(); o != nil {
		p.pressed = true
		p.pressedAt = o.Frame()
	}
}

func (p *PressurePlate) IsOn() bool {
	o := p.Owner()
	if o == nil || !p.pressed {
		return false
	}
	return o.Frame()-p.pressedAt <= uint64(p.Hold)
}

func (p *PressurePlate) IsViewInteractable() bool { return false }

func (p *PressurePlate) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, p, isCell, func(gv Visitor) { gv.InteractWithPressurePlate(p, isCell) })
}

func (p *PressurePlate) Sprite() (Sprite, bool) {
	if p.IsOn() {
		return Sprite{Glyph: "🔘", Color: tcell.ColorLime, Depth: DepthFloor}, true
	}
	return Sprite{Glyph: "⚪", Color: tcell.ColorSilver, Depth: DepthFloor}, true
}
