package input

import "github.com/gdamore/tcell/v2"

// Bindings maps a player's actions to keys.
type Bindings struct {
	Up, Down, Left, Right Key
	Interact              Key
	UseItem               Key
	SwitchItem            Key
}

// FireBindings is the first local set: arrows, j to interact, k to use the
// current item, l to switch items.
func FireBindings() Bindings {
	return Bindings{
		Up:         Code(tcell.KeyUp),
		Down:       Code(tcell.KeyDown),
		Left:       Code(tcell.KeyLeft),
		Right:      Code(tcell.KeyRight),
		Interact:   Rune('j'),
		UseItem:    Rune('k'),
		SwitchItem: Rune('l'),
	}
}

// WaterBindings is the second local set: wasd, e to interact, f to use the
// current item, r to switch items.
func WaterBindings() Bindings {
	return Bindings{
		Up:         Rune('w'),
		Down:       Rune('s'),
		Left:       Rune('a'),
		Right:      Rune('d'),
		Interact:   Rune('e'),
		UseItem:    Rune('f'),
		SwitchItem: Rune('r'),
	}
}

// Keys returns every bound key.
func (b Bindings) Keys() []Key {
	return []Key{b.Up, b.Down, b.Left, b.Right, b.Interact, b.UseItem, b.SwitchItem}
}

// Controls is the per-frame key state a player reads.
type Controls interface {
	Pressed(k Key) bool
	Down(k Key) bool
}
