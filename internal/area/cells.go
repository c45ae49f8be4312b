package area

import (
	"slices"

	"icoop/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// CanEnter reports whether e may occupy every cell in cells: each cell must be
// in bounds and walkable, and no other occupant may block e.
func (a *Area) CanEnter(e Interactable, cells []gamemap.Point) bool {
	for _, p := range cells {
		if !a.Map.IsWalkable(p) {
			return false
		}
		for _, occ := range a.Occupants(p) {
			if occ == e {
				continue
			}
			if blocks(occ, e) {
				return false
			}
		}
	}
	return true
}

// blocks reports whether occupant keeps mover out of its cell.
func blocks(occupant, mover Interactable) bool {
	if b, ok := occupant.(Blocker); ok {
		return b.BlocksEntry(mover)
	}
	if mover == nil {
		return occupant.TakeCellSpace()
	}
	return occupant.TakeCellSpace() && mover.TakeCellSpace()
}

// Occupants returns the interactables indexed at p, in registration order.
// Actors queued for removal are skipped.
func (a *Area) Occupants(p gamemap.Point) []Interactable {
	var out []Interactable
	for _, id := range a.occupantIDs(p) {
		if a.removed[id] {
			continue
		}
		if it, ok := a.actors[id].(Interactable); ok {
			out = append(out, it)
		}
	}
	return out
}

// IsFree reports whether p is walkable and holds no space-taking occupant.
func (a *Area) IsFree(p gamemap.Point) bool {
	return a.CanEnter(nil, []gamemap.Point{p})
}

func (a *Area) occupantIDs(p gamemap.Point) []ActorID {
	set, ok := a.cells[p]
	if !ok || set.Size() == 0 {
		return nil
	}
	ids := make([]ActorID, 0, set.Size())
	set.Each(func(id ActorID) { ids = append(ids, id) })
	slices.Sort(ids)
	return ids
}

// enterCells reserves cells for actor id if it may enter them.
func (a *Area) enterCells(id ActorID, cells []gamemap.Point) bool {
	act, ok := a.actors[id]
	if !ok || a.removed[id] {
		return false
	}
	it, _ := act.(Interactable)
	if it != nil {
		if !a.CanEnter(it, cells) {
			return false
		}
	} else {
		for _, p := range cells {
			if !a.Map.IsWalkable(p) {
				return false
			}
		}
		return true
	}
	a.occupy(id, cells)
	return true
}

func (a *Area) leaveCells(id ActorID, cells []gamemap.Point) {
	for _, p := range cells {
		if set, ok := a.cells[p]; ok {
			set.Remove(id)
			if set.Size() == 0 {
				delete(a.cells, p)
			}
		}
	}
	fp := a.footprint[id]
	fp = slices.DeleteFunc(fp, func(q gamemap.Point) bool { return slices.Contains(cells, q) })
	if len(fp) == 0 {
		delete(a.footprint, id)
		return
	}
	a.footprint[id] = fp
}

func (a *Area) occupy(id ActorID, cells []gamemap.Point) {
	for _, p := range cells {
		set, ok := a.cells[p]
		if !ok {
			set = mapset.New[ActorID]()
			a.cells[p] = set
		}
		set.Put(id)
		if !slices.Contains(a.footprint[id], p) {
			a.footprint[id] = append(a.footprint[id], p)
		}
	}
}

func (a *Area) vacate(id ActorID) {
	if fp, ok := a.footprint[id]; ok {
		a.leaveCells(id, slices.Clone(fp))
	}
}

// reindex recomputes the cells of an active actor after a position change.
func (a *Area) reindex(id ActorID) {
	if slices.Contains(a.pendingAdd, id) {
		return
	}
	it, ok := a.actors[id].(Interactable)
	if !ok {
		return
	}
	a.vacate(id)
	a.occupy(id, it.CurrentCells())
}
