// Package factory turns area definitions into live areas full of actors.
package factory

import (
	"errors"
	"fmt"
	"slices"

	"icoop/assets"
	"icoop/internal/area"
	"icoop/internal/entity"
	"icoop/internal/gamemap"
)

var (
	// ErrUnknownArea is returned for an area name with no definition.
	ErrUnknownArea = errors.New("unknown area")
	// ErrUnknownSignal is returned when a piece or gate names a signal
	// nothing produces.
	ErrUnknownSignal = errors.New("unknown signal")
	// ErrNoSpawn is returned when an area has no arrival marker.
	ErrNoSpawn = errors.New("no arrival marker")
	// ErrUnknownMarker is returned for a layout rune missing from the
	// legend, or a teleporter aimed at a marker the layout lacks.
	ErrUnknownMarker = errors.New("unknown marker")
)

// Built is an area ready to play together with its arrival cells.
type Built struct {
	Def      assets.AreaDef
	Area     *area.Area
	Arrivals map[rune]gamemap.Point
	// Spawn is used when a door names an arrival marker the area lacks.
	Spawn gamemap.Point
	// Foes are the enemies placed in the area.
	Foes *Foes
}

// Arrival returns the cell players arriving through marker start on.
func (b *Built) Arrival(marker rune) gamemap.Point {
	if p, ok := b.Arrivals[marker]; ok {
		return p
	}
	return b.Spawn
}

// Build creates the named area from defs. Generated areas draw their layout
// from seed.
func Build(defs map[string]assets.AreaDef, name string, env *entity.Env, seed int64) (*Built, error) {
	def, ok := defs[name]
	if !ok {
		return nil, fmt.Errorf("build %q: %w", name, ErrUnknownArea)
	}
	if def.Maze != nil {
		if _, ok := defs[def.Maze.Next]; def.Maze.Next != "" && !ok {
			return nil, fmt.Errorf("build %q: exit to %q: %w", name, def.Maze.Next, ErrUnknownArea)
		}
		return buildMaze(def, env, seed), nil
	}
	b, err := buildLayout(def, env)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", name, err)
	}
	for _, p := range def.Legend {
		if p.Kind != assets.KindDoor && p.Kind != assets.KindDialogDoor || p.Area == "" {
			continue
		}
		if _, ok := defs[p.Area]; !ok {
			return nil, fmt.Errorf("build %q: door to %q: %w", name, p.Area, ErrUnknownArea)
		}
	}
	return b, nil
}

func buildLayout(def assets.AreaDef, env *entity.Env) (*Built, error) {
	gmap, markers, err := gamemap.Parse(def.Layout)
	if err != nil {
		return nil, err
	}
	a := area.New(def.Name, gmap)
	b := &Built{Def: def, Area: a, Arrivals: make(map[rune]gamemap.Point)}

	first := make(map[rune]gamemap.Point)
	for _, m := range markers {
		if _, ok := def.Legend[m.Rune]; !ok {
			return nil, fmt.Errorf("rune %q at %d,%d: %w", m.Rune, m.At.X, m.At.Y, ErrUnknownMarker)
		}
		if _, seen := first[m.Rune]; !seen {
			first[m.Rune] = m.At
		}
	}

	sig := newSignals(def.Gates)
	b.Foes = sig.foes
	var consumers []gamemap.Marker

	// Signal sources and enemies first so every consumer can resolve its
	// input.
	for _, m := range markers {
		piece := def.Legend[m.Rune]
		var src entity.Logic
		switch piece.Kind {
		case assets.KindArrival:
			if _, ok := b.Arrivals[m.Rune]; !ok {
				b.Arrivals[m.Rune] = m.At
			}
		case assets.KindTarget:
		case assets.KindPlate:
			pp := entity.NewPressurePlate(env, m.At)
			a.Register(pp)
			src = pp
		case assets.KindOrb, assets.KindStaff:
			e, err := parseElement(piece.Element)
			if err != nil {
				return nil, fmt.Errorf("rune %q at %d,%d: %w", m.Rune, m.At.X, m.At.Y, err)
			}
			var it *entity.ElementalItem
			if piece.Kind == assets.KindOrb {
				it = entity.NewOrb(env, m.At, e)
			} else {
				it = entity.NewStaff(env, m.At, e)
			}
			if piece.Dialog != "" {
				it.WrongDialog = piece.Dialog
			}
			a.Register(it)
			src = it
		case assets.KindGrenadier, assets.KindHellSkull:
			o, err := parseFacing(piece.Facing)
			if err != nil {
				return nil, fmt.Errorf("rune %q at %d,%d: %w", m.Rune, m.At.X, m.At.Y, err)
			}
			var foe interface {
				area.Actor
				IsDying() bool
			}
			if piece.Kind == assets.KindGrenadier {
				foe = entity.NewGrenadier(env, m.At, o)
			} else {
				foe = entity.NewHellSkull(env, m.At, o)
			}
			a.Register(foe)
			sig.foes.Track(foe)
		default:
			consumers = append(consumers, m)
		}
		if src != nil && piece.ID != "" {
			sig.sources[piece.ID] = src
		}
	}

	for _, m := range consumers {
		piece := def.Legend[m.Rune]
		act, err := buildPiece(piece, m.At, env, sig, first)
		if err != nil {
			return nil, fmt.Errorf("rune %q at %d,%d: %w", m.Rune, m.At.X, m.At.Y, err)
		}
		if _, ok := act.(*entity.Door); ok {
			a.Map.Set(m.At, gamemap.MakeDoor())
		}
		a.Register(act)
	}

	if len(b.Arrivals) == 0 {
		return nil, ErrNoSpawn
	}
	keys := make([]rune, 0, len(b.Arrivals))
	for r := range b.Arrivals {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	b.Spawn = b.Arrivals[keys[0]]
	return b, nil
}

func buildPiece(piece assets.Piece, at gamemap.Point, env *entity.Env, sig *signals, markers map[rune]gamemap.Point) (area.Actor, error) {
	signal, err := sig.resolve(piece.Signal)
	if err != nil {
		return nil, err
	}
	switch piece.Kind {
	case assets.KindDoor, assets.KindDialogDoor:
		dest := entity.Destination{Area: piece.Area, Arrival: piece.Arrival}
		var d *entity.Door
		if piece.Kind == assets.KindDialogDoor {
			d = entity.NewDialogDoor(env, at, dest, signal, piece.Dialog)
		} else {
			d = entity.NewDoor(env, at, dest, signal)
		}
		d.Exit = piece.Exit
		return d, nil
	case assets.KindTeleporter:
		target, ok := markers[piece.Target]
		if !ok {
			return nil, fmt.Errorf("teleporter target %q: %w", piece.Target, ErrUnknownMarker)
		}
		return entity.NewTeleporter(env, at, target, signal), nil
	case assets.KindChest:
		item := entity.ItemNone
		if piece.Item != "" {
			it, ok := entity.ParseItem(piece.Item)
			if !ok {
				return nil, fmt.Errorf("chest item %q: unknown item", piece.Item)
			}
			item = it
		}
		c := entity.NewChest(env, at, item, max(piece.Count, 1), signal)
		if piece.Dialog != "" {
			c.OpenedDialog = piece.Dialog
		}
		return c, nil
	case assets.KindBomb:
		return entity.NewExplosive(env, at), nil
	case assets.KindWall:
		e, err := parseElement(piece.Element)
		if err != nil {
			return nil, err
		}
		return entity.NewElementalWall(env, at, e, signal), nil
	case assets.KindHeart:
		return entity.NewHeart(env, at), nil
	case assets.KindRock:
		return entity.NewRock(env, at), nil
	}
	return nil, fmt.Errorf("piece kind %q: %w", piece.Kind, ErrUnknownMarker)
}

func parseElement(name string) (entity.Element, error) {
	switch name {
	case "fire":
		return entity.ElementFire, nil
	case "water":
		return entity.ElementWater, nil
	case "", "none":
		return entity.ElementNone, nil
	}
	return entity.ElementNone, fmt.Errorf("element %q: not fire or water", name)
}

func parseFacing(name string) (gamemap.Orientation, error) {
	switch name {
	case "up":
		return gamemap.Up, nil
	case "right":
		return gamemap.Right, nil
	case "", "down":
		return gamemap.Down, nil
	case "left":
		return gamemap.Left, nil
	}
	return gamemap.Down, fmt.Errorf("facing %q: not a direction", name)
}
