package entity

import (
	"maps"
	"slices"
)

// Item is something a player can hold or pick up.
type Item uint8

const (
	ItemNone Item = iota
	ItemSword
	ItemBomb
	ItemFireStaff
	ItemWaterStaff
	ItemOrb
	ItemHeart
)

func (it Item) String() string {
	switch it {
	case ItemSword:
		return "sword"
	case ItemBomb:
		return "bomb"
	case ItemFireStaff:
		return "fire staff"
	case ItemWaterStaff:
		return "water staff"
	case ItemOrb:
		return "orb"
	case ItemHeart:
		return "heart"
	}
	return "none"
}

// ParseItem maps a lower-case item name to its Item.
func ParseItem(name string) (Item, bool) {
	for it := ItemSword; it <= ItemHeart; it++ {
		if it.String() == name {
			return it, true
		}
	}
	return ItemNone, false
}

// StaffOf returns the staff item of element e.
func StaffOf(e Element) Item {
	if e == ElementWater {
		return ItemWaterStaff
	}
	return ItemFireStaff
}

// Inventory holds item counts and the currently selected item. Items are
// kept in the order they were first obtained.
type Inventory struct {
	counts  map[Item]int
	order   []Item
	current int
}

// Add gives n more of it. The first item obtained becomes current.
func (inv *Inventory) Add(it Item, n int) {
	if n <= 0 || it == ItemNone {
		return
	}
	if inv.counts == nil {
		inv.counts = make(map[Item]int)
	}
	if inv.counts[it] == 0 && !slices.Contains(inv.order, it) {
		inv.order = append(inv.order, it)
	}
	inv.counts[it] += n
}

// Count returns how many of it are held.
func (inv *Inventory) Count(it Item) int { return inv.counts[it] }

// Has reports whether at least one it is held.
func (inv *Inventory) Has(it Item) bool { return inv.counts[it] > 0 }

// Take removes one it; false if none is held. An item whose count drops to
// zero leaves the selection cycle.
func (inv *Inventory) Take(it Item) bool {
	if inv.counts[it] <= 0 {
		return false
	}
	inv.counts[it]--
	if inv.counts[it] == 0 {
		idx := slices.Index(inv.order, it)
		inv.order = slices.Delete(inv.order, idx, idx+1)
		if inv.current >= len(inv.order) {
			inv.current = 0
		}
	}
	return true
}

// Current returns the selected item, ItemNone when empty.
func (inv *Inventory) Current() Item {
	if len(inv.order) == 0 {
		return ItemNone
	}
	return inv.order[inv.current]
}

// Cycle selects the next item.
func (inv *Inventory) Cycle() Item {
	if len(inv.order) > 0 {
		inv.current = (inv.current + 1) % len(inv.order)
	}
	return inv.Current()
}

// Items returns the held items in selection order.
func (inv *Inventory) Items() []Item { return slices.Clone(inv.order) }

// Clone returns an independent copy.
func (inv *Inventory) Clone() Inventory {
	return Inventory{counts: maps.Clone(inv.counts), order: slices.Clone(inv.order), current: inv.current}
}
