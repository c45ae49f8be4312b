package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"
)

// CenterOfMass is an invisible actor standing at the mean position of the
// living players. The camera follows it.
type CenterOfMass struct {
	area.Base
	players []*Player
}

// NewCenterOfMass returns a centre tracking players.
func NewCenterOfMass(players []*Player) *CenterOfMass {
	c := &CenterOfMass{Base: area.NewBase(gamemap.Point{}, gamemap.Down), players: players}
	c.Recompute()
	return c
}

// Recompute moves the centre to the mean of the players' positions. Dead
// players are ignored unless all of them are dead.
func (c *CenterOfMass) Recompute() {
	c.SetPosition(MeanPosition(c.players))
}

func (c *CenterOfMass) Update(float64) { c.Recompute() }

// MeanPosition returns the rounded mean of the players' positions.
func MeanPosition(players []*Player) gamemap.Point {
	var sx, sy, n int
	for _, p := range players {
		if p.Dead() {
			continue
		}
		sx += p.Position().X
		sy += p.Position().Y
		n++
	}
	if n == 0 {
		for _, p := range players {
			sx += p.Position().X
			sy += p.Position().Y
			n++
		}
	}
	if n == 0 {
		return gamemap.Point{}
	}
	return gamemap.Point{X: roundDiv(sx, n), Y: roundDiv(sy, n)}
}

// roundDiv divides rounding half away from zero.
func roundDiv(a, n int) int {
	if a >= 0 {
		return (a + n/2) / n
	}
	return -((-a + n/2) / n)
}
