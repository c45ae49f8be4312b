package factory

import (
	"fmt"

	"icoop/assets"
	"icoop/internal/entity"
)

// signals resolves the signal names used in an area definition.
type signals struct {
	gates    map[string]assets.Gate
	sources  map[string]entity.Logic
	resolved map[string]entity.Logic
	visiting map[string]bool
	foes     *Foes
}

func newSignals(gates map[string]assets.Gate) *signals {
	return &signals{
		gates:    gates,
		sources:  make(map[string]entity.Logic),
		resolved: make(map[string]entity.Logic),
		visiting: make(map[string]bool),
		foes:     &Foes{},
	}
}

func (s *signals) resolve(name string) (entity.Logic, error) {
	switch name {
	case "", assets.SignalOn:
		return entity.On, nil
	case assets.SignalOff:
		return entity.Off, nil
	case assets.SignalCleared:
		return s.foes, nil
	}
	if l, ok := s.sources[name]; ok {
		return l, nil
	}
	if l, ok := s.resolved[name]; ok {
		return l, nil
	}
	g, ok := s.gates[name]
	if !ok {
		return nil, fmt.Errorf("signal %q: %w", name, ErrUnknownSignal)
	}
	if s.visiting[name] {
		return nil, fmt.Errorf("signal %q: gate loops back on itself", name)
	}
	s.visiting[name] = true
	defer delete(s.visiting, name)

	in := make([]entity.Logic, 0, len(g.Inputs))
	for _, input := range g.Inputs {
		l, err := s.resolve(input)
		if err != nil {
			return nil, fmt.Errorf("gate %q: %w", name, err)
		}
		in = append(in, l)
	}

	var out entity.Logic
	switch g.Op {
	case "and":
		out = entity.And(in...)
	case "or":
		out = entity.Or(in...)
	case "not":
		if len(in) != 1 {
			return nil, fmt.Errorf("gate %q: not takes one input, got %d", name, len(in))
		}
		out = entity.Not(in[0])
	default:
		return nil, fmt.Errorf("gate %q: unknown op %q", name, g.Op)
	}
	s.resolved[name] = out
	return out, nil
}

// Foes tracks the enemies of an area. As a signal it is on once every one
// of them is dying or dead.
type Foes struct {
	list []interface{ IsDying() bool }
}

// Track adds enemies to the set.
func (f *Foes) Track(enemies ...interface{ IsDying() bool }) {
	f.list = append(f.list, enemies...)
}

// Alive returns how many tracked enemies are still fighting.
func (f *Foes) Alive() int {
	n := 0
	for _, e := range f.list {
		if !e.IsDying() {
			n++
		}
	}
	return n
}

func (f *Foes) IsOn() bool { return f.Alive() == 0 }
