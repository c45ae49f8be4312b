package entity

import (
	"math/rand"

	"icoop/internal/gamemap"
)

// EventKind enumerates what actors report to the game.
type EventKind uint8

const (
	EventDialog EventKind = iota
	EventDoorTeleport
	EventVictory
	EventExplosion
	EventPickup
	EventHurt
	EventEnemyKilled
	EventPlayerDied
	EventDoorOpened
	EventChestOpened
)

func (k EventKind) String() string {
	switch k {
	case EventDialog:
		return "dialog"
	case EventDoorTeleport:
		return "door-teleport"
	case EventVictory:
		return "victory"
	case EventExplosion:
		return "explosion"
	case EventPickup:
		return "pickup"
	case EventHurt:
		return "hurt"
	case EventEnemyKilled:
		return "enemy-killed"
	case EventPlayerDied:
		return "player-died"
	case EventDoorOpened:
		return "door-opened"
	case EventChestOpened:
		return "chest-opened"
	}
	return "unknown"
}

// Event is one notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Player  *Player
	At      gamemap.Point
	Dialog  string // catalog key
	Area    string // destination area of a door
	Arrival rune   // arrival marker in the destination area
	Item    Item
	Count   int
}

// Bus collects the events raised during a frame. The game drains it after
// each area update.
type Bus struct {
	events []Event
}

// Post appends e.
func (b *Bus) Post(e Event) { b.events = append(b.events, e) }

// Drain returns the queued events and empties the bus.
func (b *Bus) Drain() []Event {
	out := b.events
	b.events = nil
	return out
}

// Len returns the number of queued events.
func (b *Bus) Len() int { return len(b.events) }

// Env is shared by every actor of a game: the event bus and the random
// source used by enemy AI.
type Env struct {
	Bus  *Bus
	Rand *rand.Rand
}

// NewEnv returns an Env seeded with seed.
func NewEnv(seed int64) *Env {
	return &Env{Bus: &Bus{}, Rand: rand.New(rand.NewSource(seed))}
}

func (e *Env) post(ev Event) {
	if e != nil && e.Bus != nil {
		e.Bus.Post(ev)
	}
}
