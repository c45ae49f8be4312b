// Package game runs a cooperative session: the areas, the players moving
// between them together, dialogs and the end of the run.
package game

import (
	"fmt"
	"hash/fnv"

	"icoop/assets"
	"icoop/internal/area"
	"icoop/internal/audio"
	"icoop/internal/dialog"
	"icoop/internal/entity"
	"icoop/internal/factory"
	"icoop/internal/gamemap"
	"icoop/internal/input"
	"icoop/internal/render"

	"github.com/zyedidia/generic/mapset"
)

// State tracks whether the run goes on.
type State uint8

const (
	StatePlaying State = iota
	StateVictory
	StateQuit
)

// Seat is one player at the table: a name, where its keys come from and
// which keys it reads.
type Seat struct {
	Name     string
	Controls input.Controls
	Bindings input.Bindings
}

// Game owns the areas, the players and everything shown around the map.
type Game struct {
	cfg     Config
	env     *entity.Env
	defs    map[string]assets.AreaDef
	catalog *dialog.Catalog
	cues    audio.Cues

	areas   map[string]*factory.Built
	current *factory.Built
	arrival rune

	players []*entity.Player
	saved   []entity.Inventory
	center  *entity.CenterOfMass

	dialog   *dialog.Dialog
	pending  []string
	entered  mapset.Set[string]
	messages []string
	state    State
	log      RunLog
}

// New starts a run for seats in the configured start area. Seats alternate
// between the fire and the water element, fire first.
func New(cfg Config, seats []Seat) (*Game, error) {
	return NewWithAreas(cfg, seats, assets.Areas)
}

// NewWithAreas is New over a custom set of area definitions.
func NewWithAreas(cfg Config, seats []Seat, defs map[string]assets.AreaDef) (*Game, error) {
	if len(seats) == 0 {
		return nil, fmt.Errorf("game: no players")
	}
	catalog, err := dialog.Load(assets.Dialogs, "dialogs/"+cfg.Language+".po")
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		env:     entity.NewEnv(cfg.Seed),
		defs:    defs,
		catalog: catalog,
		cues:    audio.Silent{},
		areas:   make(map[string]*factory.Built),
		entered: mapset.New[string](),
	}
	for i, s := range seats {
		e := entity.ElementFire
		if i%2 == 1 {
			e = entity.ElementWater
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("P%d", i+1)
		}
		g.players = append(g.players, entity.NewPlayer(g.env, name, e, s.Controls, s.Bindings))
		g.log.Players = append(g.log.Players, name)
	}
	g.center = entity.NewCenterOfMass(g.players)

	if err := g.enter(cfg.StartArea, 0); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return g, nil
}

// SetCues routes sound cues to c.
func (g *Game) SetCues(c audio.Cues) {
	if c == nil {
		c = audio.Silent{}
	}
	g.cues = c
}

// Update runs one frame. While a dialog is open only the dialog moves on.
func (g *Game) Update(dt float64) {
	if g.state != StatePlaying {
		return
	}
	g.log.Frames++

	if g.dialog != nil {
		if g.anyInteract() {
			g.dialog.Next()
			if g.dialog.Done() {
				g.dialog = nil
				g.nextDialog()
			}
		}
		return
	}

	g.current.Area.Update(dt)
	g.handle(g.env.Bus.Drain())
	g.center.Recompute()
	g.updateVisibility()
}

func (g *Game) handle(events []entity.Event) {
	var travel *entity.Event
	restart := false
	for _, ev := range events {
		switch ev.Kind {
		case entity.EventDialog:
			g.showDialog(ev.Dialog)
		case entity.EventDoorTeleport:
			if travel == nil {
				travel = &ev
			}
		case entity.EventVictory:
			g.finish()
		case entity.EventExplosion:
			g.cues.Play(audio.CueExplosion)
		case entity.EventHurt:
			g.cues.Play(audio.CueHurt)
		case entity.EventPickup:
			if ev.Item == entity.ItemOrb {
				g.log.Orbs++
			}
			g.addMessage(fmt.Sprintf("%s picks up the %s.", ev.Player.Name, ev.Item))
			g.cues.Play(audio.CuePickup)
		case entity.EventChestOpened:
			if ev.Count > 0 && ev.Item != entity.ItemNone {
				g.addMessage(fmt.Sprintf("%s finds %d × %s.", ev.Player.Name, ev.Count, ev.Item))
			}
			g.cues.Play(audio.CuePickup)
		case entity.EventDoorOpened:
			g.addMessage("A door opens.")
			g.cues.Play(audio.CueDoor)
		case entity.EventEnemyKilled:
			g.log.EnemiesKilled++
			g.addMessage("An enemy falls.")
			g.cues.Play(audio.CueEnemyDown)
		case entity.EventPlayerDied:
			restart = true
			g.log.Deaths++
			g.addMessage(fmt.Sprintf("%s has fallen.", ev.Player.Name))
			g.cues.Play(audio.CueDeath)
		}
	}

	if g.state != StatePlaying {
		return
	}
	if restart {
		g.restart()
		return
	}
	if travel != nil {
		if err := g.enter(travel.Area, travel.Arrival); err != nil {
			g.addMessage(fmt.Sprintf("The door leads nowhere: %v", err))
		}
	}
}

// enter moves every player into the named area at arrival, building the
// area the first time it is visited.
func (g *Game) enter(name string, arrival rune) error {
	b, ok := g.areas[name]
	if !ok {
		var err error
		b, err = factory.Build(g.defs, name, g.env, g.seedFor(name))
		if err != nil {
			return err
		}
		g.areas[name] = b
	}
	g.moveTo(b, arrival)

	g.saved = g.saved[:0]
	for _, p := range g.players {
		g.saved = append(g.saved, p.Inventory.Clone())
	}
	if !g.entered.Has(name) {
		g.entered.Put(name)
		g.log.AreasVisited = append(g.log.AreasVisited, name)
		if b.Def.Enter != "" {
			g.showDialog(b.Def.Enter)
		}
	}
	return nil
}

// moveTo takes the players out of the current area and spawns them in b.
func (g *Game) moveTo(b *factory.Built, arrival rune) {
	if g.current != nil {
		for _, p := range g.players {
			g.current.Area.Remove(p)
		}
		g.current.Area.Remove(g.center)
	}
	g.current = b
	g.arrival = arrival

	a := b.Area
	a.Flush()
	cells := SpawnCells(a, b.Arrival(arrival), len(g.players))
	for i, p := range g.players {
		p.SetPosition(cells[i])
		a.Register(p)
	}
	a.Register(g.center)
	a.Flush()

	g.center.Recompute()
	g.updateVisibility()
}

// restart rebuilds the current area from scratch after a death and puts the
// players back where they came in, healed and holding what they carried on
// arrival.
func (g *Game) restart() {
	name := g.current.Def.Name
	b, err := factory.Build(g.defs, name, g.env, g.seedFor(name))
	if err != nil {
		g.addMessage(fmt.Sprintf("The area cannot restart: %v", err))
		return
	}
	for i, p := range g.players {
		p.Revive()
		if i < len(g.saved) {
			p.Inventory = g.saved[i].Clone()
		}
	}
	g.areas[name] = b
	g.moveTo(b, g.arrival)
	g.env.Bus.Drain()
	g.showDialog("death")
}

func (g *Game) finish() {
	g.state = StateVictory
	g.log.Victory = true
	g.cues.Play(audio.CueVictory)
	g.addMessage(g.catalog.Text("victory"))
}

// Quit ends the run without a victory.
func (g *Game) Quit() {
	if g.state == StatePlaying {
		g.state = StateQuit
	}
}

// seedFor gives every area its own stable seed so a rebuilt area comes back
// the same.
func (g *Game) seedFor(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return g.cfg.Seed ^ int64(h.Sum64())
}

func (g *Game) showDialog(key string) {
	if g.dialog != nil {
		g.pending = append(g.pending, key)
		return
	}
	d := dialog.New(key, g.catalog.Text(key), g.cfg.DialogWidth, g.cfg.DialogLines)
	if d.Done() {
		g.nextDialog()
		return
	}
	g.dialog = d
}

func (g *Game) nextDialog() {
	if len(g.pending) == 0 {
		return
	}
	key := g.pending[0]
	g.pending = g.pending[1:]
	g.showDialog(key)
}

func (g *Game) anyInteract() bool {
	for _, p := range g.players {
		if p.Controls != nil && p.Controls.Pressed(p.Bindings.Interact) {
			return true
		}
	}
	return false
}

func (g *Game) updateVisibility() {
	m := g.current.Area.Map
	m.ClearVisibility()
	for _, p := range g.players {
		if !p.Dead() {
			m.CastFOV(p.Position(), g.cfg.FOVRadius)
		}
	}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if n := g.cfg.MaxMessages; n > 0 && len(g.messages) > n {
		g.messages = g.messages[len(g.messages)-n:]
	}
}

// State reports whether the run is still going.
func (g *Game) State() State { return g.state }

// Area returns the area the players are in.
func (g *Game) Area() *area.Area { return g.current.Area }

// AreaName returns the definition name of the current area.
func (g *Game) AreaName() string { return g.current.Def.Name }

// Title returns the display name of the current area.
func (g *Game) Title() string {
	if g.current.Def.Title != "" {
		return g.current.Def.Title
	}
	return g.current.Def.Name
}

// Theme returns the tile glyphs of the current area.
func (g *Game) Theme() assets.Tiles { return assets.ThemeOf(g.current.Def.Name) }

// Players returns the players, fire first.
func (g *Game) Players() []*entity.Player { return g.players }

// Center returns the cell the camera follows.
func (g *Game) Center() gamemap.Point { return g.center.Position() }

// Dialog returns the open dialog, or nil.
func (g *Game) Dialog() *dialog.Dialog { return g.dialog }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// Log returns the statistics gathered so far.
func (g *Game) Log() RunLog { return g.log }

// Text returns the catalog text for key.
func (g *Game) Text(key string) string { return g.catalog.Text(key) }

// View returns what the renderer needs for the current frame.
func (g *Game) View() render.View {
	return render.View{
		Area:     g.current.Area,
		Tiles:    g.Theme(),
		Title:    g.Title(),
		Center:   g.Center(),
		Players:  g.players,
		Messages: g.messages,
		Dialog:   g.dialog,
	}
}
