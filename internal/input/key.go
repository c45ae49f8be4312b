package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Key identifies a key: a named tcell key, or a rune for KeyRune.
// Runes are stored lower-cased so bindings ignore shift and caps lock.
type Key struct {
	Code tcell.Key
	Rune rune
}

// KeyOf converts a tcell key event.
func KeyOf(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return Rune(ev.Rune())
	}
	return Code(ev.Key())
}

// Rune returns the key for a printable rune.
func Rune(r rune) Key { return Key{Code: tcell.KeyRune, Rune: unicode.ToLower(r)} }

// Code returns the key for a named key such as tcell.KeyUp.
func Code(k tcell.Key) Key { return Key{Code: k} }

// IsZero reports whether k is unbound.
func (k Key) IsZero() bool { return k == Key{} }

func (k Key) String() string {
	if k.Code == tcell.KeyRune {
		return string(k.Rune)
	}
	if name, ok := tcell.KeyNames[k.Code]; ok {
		return name
	}
	return "?"
}
