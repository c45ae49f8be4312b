package factory

import (
	"icoop/assets"
	"icoop/internal/area"
	"icoop/internal/entity"
	"icoop/internal/gamemap"
	"icoop/internal/generate"
)

// MazeConfig returns the generator settings for def.
func MazeConfig(def *assets.MazeDef, seed int64) *generate.Config {
	cfg := generate.DefaultConfig(seed)
	if def.Width > 0 {
		cfg.MapWidth = def.Width
	}
	if def.Height > 0 {
		cfg.MapHeight = def.Height
	}
	cfg.EnemyBudget = def.EnemyBudget
	cfg.HeartCount = def.Hearts
	cfg.RockCount = def.Rocks
	return cfg
}

// buildMaze carves a generated area. Players arrive in the first room; the
// exit door in the last room leads to the next area, or ends the run when
// there is none.
func buildMaze(def assets.AreaDef, env *entity.Env, seed int64) *Built {
	cfg := MazeConfig(def.Maze, seed)
	gmap, start := generate.Generate(cfg)
	placed := generate.Populate(gmap, cfg)

	a := area.New(def.Name, gmap)
	b := &Built{
		Def:      def,
		Area:     a,
		Arrivals: map[rune]gamemap.Point{def.Maze.Arrival: start},
		Spawn:    start,
		Foes:     &Foes{},
	}

	for _, s := range placed.Enemies {
		switch s.Entry.Kind {
		case generate.EnemyGrenadier:
			g := entity.NewGrenadier(env, s.At, s.Facing)
			a.Register(g)
			b.Foes.Track(g)
		case generate.EnemyHellSkull:
			h := entity.NewHellSkull(env, s.At, s.Facing)
			a.Register(h)
			b.Foes.Track(h)
		}
	}
	for _, p := range placed.Hearts {
		a.Register(entity.NewHeart(env, p))
	}
	for _, p := range placed.Rocks {
		a.Register(entity.NewRock(env, p))
	}

	exit := entity.NewDoor(env, placed.Exit, entity.Destination{Area: def.Maze.Next, Arrival: def.Maze.Arrival}, entity.On)
	exit.Exit = def.Maze.Next == ""
	gmap.Set(placed.Exit, gamemap.MakeDoor())
	a.Register(exit)
	return b
}
