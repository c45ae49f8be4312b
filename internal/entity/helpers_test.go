package entity

import (
	"testing"

	"icoop/internal/area"
	"icoop/internal/gamemap"
	"icoop/internal/input"
)

// keys is a scripted input.Controls: taps last one frame, holds persist.
type keys struct {
	tapped map[input.Key]bool
	held   map[input.Key]bool
}

func newKeys() *keys {
	return &keys{tapped: map[input.Key]bool{}, held: map[input.Key]bool{}}
}

func (k *keys) Pressed(key input.Key) bool { return k.tapped[key] }
func (k *keys) Down(key input.Key) bool    { return k.tapped[key] || k.held[key] }

func (k *keys) tap(key input.Key)  { k.tapped[key] = true }
func (k *keys) hold(key input.Key) { k.held[key] = true }
func (k *keys) release()           { clear(k.held) }

// world is a walled room with an event log.
type world struct {
	t      *testing.T
	env    *Env
	area   *area.Area
	keys   []*keys
	events []Event
}

func newWorld(t *testing.T, w, h int) *world {
	t.Helper()
	m := gamemap.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(gamemap.Point{X: x, Y: y}, gamemap.MakeFloor())
		}
	}
	return &world{t: t, env: NewEnv(1), area: area.New("room", m)}
}

func (w *world) add(acts ...area.Actor) {
	for _, a := range acts {
		w.area.Register(a)
	}
}

// player registers a player at (x, y) facing o, moving one cell per frame.
func (w *world) player(x, y int, e Element, o gamemap.Orientation) (*Player, *keys) {
	k := newKeys()
	b := input.FireBindings()
	p := NewPlayer(w.env, e.String(), e, k, b)
	p.MoveFrames = 1
	p.SetPosition(gamemap.Point{X: x, Y: y})
	p.SetOrientation(o)
	w.keys = append(w.keys, k)
	w.add(p)
	return p, k
}

// step runs n frames, collecting events and expiring taps.
func (w *world) step(n int) {
	for range n {
		w.area.Update(1.0 / 24)
		w.events = append(w.events, w.env.Bus.Drain()...)
		for _, k := range w.keys {
			clear(k.tapped)
		}
	}
}

func (w *world) count(kind EventKind) int {
	n := 0
	for _, e := range w.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (w *world) last(kind EventKind) (Event, bool) {
	for i := len(w.events) - 1; i >= 0; i-- {
		if w.events[i].Kind == kind {
			return w.events[i], true
		}
	}
	return Event{}, false
}

func pt(x, y int) gamemap.Point { return gamemap.Point{X: x, Y: y} }

func fireKeys() input.Bindings { return input.FireBindings() }
