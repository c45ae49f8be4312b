package entity

import "github.com/gdamore/tcell/v2"

// Render depths; lower is drawn first.
const (
	DepthFloor = iota
	DepthItem
	DepthObject
	DepthCreature
	DepthEffect
)

// Sprite describes how an actor is drawn.
type Sprite struct {
	Glyph string
	Color tcell.Color
	Depth int
}

// Drawable actors report their sprite; ok is false when nothing is drawn.
type Drawable interface {
	Sprite() (s Sprite, ok bool)
}
