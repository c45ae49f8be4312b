package input

import "time"

// DefaultHold is how long a key counts as held after its last event.
// Terminals only report presses and auto-repeats, never releases.
const DefaultHold = 180 * time.Millisecond

// Keyboard turns a stream of key events into per-frame key state.
//
// Press records an event as it arrives. Advance starts a new frame: keys
// pressed since the previous Advance become Pressed for this frame, and a
// key stays Down until Hold has passed since its last event.
type Keyboard struct {
	Hold time.Duration

	now     time.Time
	last    map[Key]time.Time
	fresh   map[Key]bool
	pressed map[Key]bool
}

// NewKeyboard returns a keyboard with the given hold window.
func NewKeyboard(hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keyboard{
		Hold:    hold,
		last:    make(map[Key]time.Time),
		fresh:   make(map[Key]bool),
		pressed: make(map[Key]bool),
	}
}

// Press records an event for k at time at.
func (kb *Keyboard) Press(k Key, at time.Time) {
	kb.last[k] = at
	kb.fresh[k] = true
}

// Advance starts the frame at time now.
func (kb *Keyboard) Advance(now time.Time) {
	kb.now = now
	kb.pressed, kb.fresh = kb.fresh, kb.pressed
	clear(kb.fresh)
	for k, t := range kb.last {
		if now.Sub(t) > kb.Hold {
			delete(kb.last, k)
		}
	}
}

// Pressed reports whether k had an event since the previous frame.
func (kb *Keyboard) Pressed(k Key) bool { return kb.pressed[k] }

// Down reports whether k is held.
func (kb *Keyboard) Down(k Key) bool {
	if kb.pressed[k] {
		return true
	}
	t, ok := kb.last[k]
	return ok && kb.now.Sub(t) <= kb.Hold
}

// Reset forgets every key.
func (kb *Keyboard) Reset() {
	clear(kb.last)
	clear(kb.fresh)
	clear(kb.pressed)
}
