package area

import (
	"slices"

	"icoop/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// Area owns a grid of cells and the actors registered in it.
//
// Registration is deferred: Register and Unregister queue changes that are
// applied at the start of the next Update, so the actor set never changes
// while actors are being updated or interactions resolved.
type Area struct {
	Name string
	Map  *gamemap.GameMap

	nextID    ActorID
	frame     uint64
	actors    map[ActorID]Actor
	ids       map[Actor]ActorID
	order     []ActorID
	cells     map[gamemap.Point]mapset.Set[ActorID]
	footprint map[ActorID][]gamemap.Point

	pendingAdd    []ActorID
	pendingRemove []ActorID
	removed       map[ActorID]bool
}

// New creates an empty area over gmap.
func New(name string, gmap *gamemap.GameMap) *Area {
	return &Area{
		Name:      name,
		Map:       gmap,
		nextID:    1,
		actors:    make(map[ActorID]Actor),
		ids:       make(map[Actor]ActorID),
		cells:     make(map[gamemap.Point]mapset.Set[ActorID]),
		footprint: make(map[ActorID][]gamemap.Point),
		removed:   make(map[ActorID]bool),
	}
}

// Frame returns the number of updates run so far.
func (a *Area) Frame() uint64 { return a.frame }

// Register queues act for insertion and returns its ID. Registering an actor
// that is queued for removal cancels the removal.
func (a *Area) Register(act Actor) ActorID {
	if id, ok := a.ids[act]; ok {
		if a.removed[id] {
			delete(a.removed, id)
			a.pendingRemove = slices.DeleteFunc(a.pendingRemove, func(x ActorID) bool { return x == id })
		}
		return id
	}
	id := a.nextID
	a.nextID++
	a.actors[id] = act
	a.ids[act] = id
	a.pendingAdd = append(a.pendingAdd, id)
	if at, ok := act.(attachable); ok {
		at.attach(a, id)
	}
	return id
}

// Unregister queues act for removal. It stops receiving interactions
// immediately and is detached at the next purge.
func (a *Area) Unregister(act Actor) {
	if id, ok := a.ids[act]; ok {
		a.unregisterID(id)
	}
}

func (a *Area) unregisterID(id ActorID) {
	if _, ok := a.actors[id]; !ok || a.removed[id] {
		return
	}
	a.removed[id] = true
	a.pendingRemove = append(a.pendingRemove, id)
}

// Remove takes act out of the area at once, bypassing the queue. It is meant
// for moving actors between areas outside of an Update.
func (a *Area) Remove(act Actor) {
	id, ok := a.ids[act]
	if !ok {
		return
	}
	a.pendingAdd = slices.DeleteFunc(a.pendingAdd, func(x ActorID) bool { return x == id })
	a.pendingRemove = slices.DeleteFunc(a.pendingRemove, func(x ActorID) bool { return x == id })
	a.drop(id)
}

// Registered reports whether act is registered and not queued for removal.
func (a *Area) Registered(act Actor) bool {
	id, ok := a.ids[act]
	return ok && !a.removed[id]
}

// Lookup returns the actor with the given ID, or nil.
func (a *Area) Lookup(id ActorID) Actor {
	if a.removed[id] {
		return nil
	}
	return a.actors[id]
}

// Actors returns the active actors in registration order.
func (a *Area) Actors() []Actor {
	out := make([]Actor, 0, len(a.order))
	for _, id := range a.order {
		if !a.removed[id] {
			out = append(out, a.actors[id])
		}
	}
	return out
}

// ActorsOf returns the active actors of area a whose dynamic type is T.
func ActorsOf[T any](a *Area) []T {
	var out []T
	for _, act := range a.Actors() {
		if t, ok := act.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Flush applies the queued registrations now instead of at the next Update.
func (a *Area) Flush() { a.purge() }

// purge applies the queued registrations.
func (a *Area) purge() {
	for _, id := range a.pendingAdd {
		if a.removed[id] {
			continue
		}
		a.order = append(a.order, id)
		if it, ok := a.actors[id].(Interactable); ok {
			a.occupy(id, it.CurrentCells())
		}
	}
	a.pendingAdd = a.pendingAdd[:0]

	for _, id := range a.pendingRemove {
		a.drop(id)
	}
	a.pendingRemove = a.pendingRemove[:0]
}

func (a *Area) drop(id ActorID) {
	act, ok := a.actors[id]
	if !ok {
		return
	}
	a.vacate(id)
	delete(a.actors, id)
	delete(a.ids, act)
	delete(a.removed, id)
	a.order = slices.DeleteFunc(a.order, func(x ActorID) bool { return x == id })
	if at, ok := act.(attachable); ok {
		at.detach(a)
	}
}

// Update runs one frame: purge registrations, update every actor, then
// resolve cell and view interactions for every interactor.
func (a *Area) Update(dt float64) {
	a.purge()
	a.frame++

	ids := slices.Clone(a.order)
	for _, id := range ids {
		if a.removed[id] {
			continue
		}
		a.actors[id].Update(dt)
	}

	for _, id := range ids {
		if a.removed[id] {
			continue
		}
		it, ok := a.actors[id].(Interactor)
		if !ok {
			continue
		}
		if it.WantsCellInteraction() {
			a.interactIn(id, it, it.CurrentCells(), true)
		}
		if !a.removed[id] && it.WantsViewInteraction() {
			a.interactIn(id, it, it.FieldOfViewCells(), false)
		}
	}
}

func (a *Area) interactIn(self ActorID, it Interactor, cells []gamemap.Point, isCell bool) {
	for _, p := range cells {
		for _, oid := range a.occupantIDs(p) {
			if oid == self {
				continue
			}
			if a.removed[self] {
				return
			}
			if a.removed[oid] {
				continue
			}
			other, ok := a.actors[oid].(Interactable)
			if !ok {
				continue
			}
			if isCell && !other.IsCellInteractable() {
				continue
			}
			if !isCell && !other.IsViewInteractable() {
				continue
			}
			it.Interact(other, isCell)
		}
	}
}
