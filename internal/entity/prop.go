package entity

import (
	"icoop/internal/area"
	"icoop/internal/gamemap"
)

// prop holds the defaults shared by actors that never move: they do not
// take cell space and can be reached both by cell and by view.
type prop struct {
	area.Base
	env *Env
}

func newProp(env *Env, at gamemap.Point) prop {
	return prop{Base: area.NewBase(at, gamemap.Down), env: env}
}

func (*prop) Update(float64)           {}
func (*prop) TakeCellSpace() bool      { return false }
func (*prop) IsCellInteractable() bool { return true }
func (*prop) IsViewInteractable() bool { return true }
