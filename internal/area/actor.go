package area

import "icoop/internal/gamemap"

// ActorID uniquely identifies an actor registered in an area.
type ActorID uint64

// NoActor is the zero value; no registered actor has this ID.
const NoActor ActorID = 0

// Actor is anything the area updates once per frame.
type Actor interface {
	Update(dt float64)
}

// Interactable is an actor other actors can interact with, either because
// they share a cell (cell interaction) or because it lies in their field of
// view (view interaction).
type Interactable interface {
	CurrentCells() []gamemap.Point
	TakeCellSpace() bool
	IsCellInteractable() bool
	IsViewInteractable() bool
	AcceptInteraction(v Visitor, isCellInteraction bool)
}

// Interactor is an interactable that initiates interactions.
type Interactor interface {
	Interactable
	FieldOfViewCells() []gamemap.Point
	WantsCellInteraction() bool
	WantsViewInteraction() bool
	Interact(other Interactable, isCellInteraction bool)
}

// Visitor receives the second half of a double dispatch. Game packages extend
// it with one method per concrete interactable type; InteractWith is the
// fallback for types a visitor does not know.
type Visitor interface {
	InteractWith(other Interactable, isCellInteraction bool)
}

// Blocker lets an occupant decide per mover whether its cell can be entered.
// It overrides the TakeCellSpace rule in CanEnter.
type Blocker interface {
	BlocksEntry(mover Interactable) bool
}

// attachable is implemented by Base; the area uses it to hand actors their
// owner and ID.
type attachable interface {
	attach(a *Area, id ActorID)
	detach(a *Area)
}
