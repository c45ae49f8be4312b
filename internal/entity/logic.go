package entity

// Logic is a boolean signal read once per frame by doors, walls, chests and
// teleporters.
type Logic interface {
	IsOn() bool
}

type constant bool

func (c constant) IsOn() bool { return bool(c) }

var (
	// On is always on.
	On Logic = constant(true)
	// Off is always off.
	Off Logic = constant(false)
)

// LogicFunc adapts a function to Logic.
type LogicFunc func() bool

func (f LogicFunc) IsOn() bool { return f() }

// And is on when every input is on. An empty And is on.
func And(in ...Logic) Logic {
	return LogicFunc(func() bool {
		for _, l := range in {
			if !l.IsOn() {
				return false
			}
		}
		return true
	})
}

// Or is on when any input is on.
func Or(in ...Logic) Logic {
	return LogicFunc(func() bool {
		for _, l := range in {
			if l.IsOn() {
				return true
			}
		}
		return false
	})
}

// Not inverts x.
func Not(x Logic) Logic {
	return LogicFunc(func() bool { return !x.IsOn() })
}

// Switch is a settable signal.
type Switch struct {
	on bool
}

func (s *Switch) IsOn() bool { return s.on }

// Set changes the switch state.
func (s *Switch) Set(on bool) { s.on = on }
