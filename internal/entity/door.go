package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Destination names where a door leads.
type Destination struct {
	Area    string
	Arrival rune
}

// Door links two areas. Its open state follows Signal; a player arriving on
// an open door raises a door-teleport event. An Exit door ends the run.
type Door struct {
	prop
	Signal      Logic
	Destination Destination
	Exit        bool
	// ClosedDialog, when set, is shown to a player interacting with the
	// closed door. Doors built with NewDialogDoor have one.
	ClosedDialog string

	open bool
}

// NewDoor returns a door at at, closed until signal turns on.
func NewDoor(env *Env, at gamemap.Point, dest Destination, signal Logic) *Door {
	if signal == nil {
		signal = On
	}
	d := &Door{prop: newProp(env, at), Signal: signal, Destination: dest}
	d.open = signal.IsOn()
	return d
}

// NewDialogDoor returns a door that shows dialog while it is closed.
func NewDialogDoor(env *Env, at gamemap.Point, dest Destination, signal Logic, dialog string) *Door {
	d := NewDoor(env, at, dest, signal)
	d.ClosedDialog = dialog
	return d
}

// IsOpen reports the door's state.
func (d *Door) IsOpen() bool { return d.open }

func (d *Door) Update(float64) {
	want := d.Signal.IsOn()
	if want == d.open {
		return
	}
	if want {
		d.open = true
		d.env.post(Event{Kind: EventDoorOpened, At: d.Position()})
		return
	}
	// Never close on someone standing in the doorway.
	if o := d.Owner(); o != nil && len(o.Occupants(d.Position())) > 1 {
		return
	}
	d.open = false
}

func (d *Door) TakeCellSpace() bool { return !d.open }

// BlocksEntry keeps everything out while closed.
func (d *Door) BlocksEntry(area.Interactable) bool { return !d.open }

func (d *Door) AcceptInteraction(v area.Visitor, isCell bool) {
	visit(v, d, isCell, func(gv Visitor) { gv.InteractWithDoor(d, isCell) })
}

// Pass raises the event for player p walking through the open door.
func (d *Door) Pass(p *Player) {
	if !d.open {
		return
	}
	if d.Exit {
		d.env.post(Event{Kind: EventVictory, Player: p, At: d.Position()})
		return
	}
	if d.Destination.Area == "" {
		return
	}
	d.env.post(Event{
		Kind:    EventDoorTeleport,
		Player:  p,
		At:      d.Position(),
		Area:    d.Destination.Area,
		Arrival: d.Destination.Arrival,
	})
}

// Knock shows the closed dialog, if any.
func (d *Door) Knock(p *Player) {
	if d.open || d.ClosedDialog == "" {
		return
	}
	d.env.post(Event{Kind: EventDialog, Player: p, Dialog: d.ClosedDialog})
}

func (d *Door) Sprite() (Sprite, bool) {
	if d.open {
		return Sprite{Glyph: "🚪", Color: tcell.ColorGreen, Depth: DepthFloor}, true
	}
	return Sprite{Glyph: "🔒", Color: tcell.ColorRed, Depth: DepthObject}, true
}
