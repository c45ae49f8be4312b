package game

import (
	"fmt"
	"strings"
	"time"

	"icoop/internal/audio"
	"icoop/internal/input"
	"icoop/internal/render"

	"github.com/gdamore/tcell/v2"
)

// screenEvent is an event from screen, or a disconnect when ev is nil.
type screenEvent struct {
	screen int
	ev     tcell.Event
}

// Session runs a game in real time on one or more screens. Each screen has
// a polling goroutine; the session loop owns all game state.
type Session struct {
	cfg       Config
	game      *Game
	screens   []tcell.Screen
	renderers []*render.Renderer
	keyboards []*input.Keyboard
	// keyboardOf maps a screen to the keyboard its keys go to.
	keyboardOf []int
	events     chan screenEvent
	done       chan struct{}
}

// NewLocalSession runs every player on one terminal: one keyboard, the
// first player on the fire keys and the second on the water keys.
func NewLocalSession(cfg Config, screen tcell.Screen) (*Session, error) {
	kb := input.NewKeyboard(cfg.Hold)
	bindings := []input.Bindings{input.FireBindings(), input.WaterBindings()}
	seats := make([]Seat, 0, len(bindings))
	for i, b := range bindings {
		seats = append(seats, Seat{Name: nameAt(cfg.Names, i), Controls: kb, Bindings: b})
	}
	return newSession(cfg, []tcell.Screen{screen}, []*input.Keyboard{kb}, []int{0}, seats)
}

// NewNetworkSession gives each player a screen and a keyboard of their own.
// Everyone uses the primary key set.
func NewNetworkSession(cfg Config, screens []tcell.Screen) (*Session, error) {
	keyboards := make([]*input.Keyboard, 0, len(screens))
	keyboardOf := make([]int, 0, len(screens))
	seats := make([]Seat, 0, len(screens))
	for i := range screens {
		kb := input.NewKeyboard(cfg.Hold)
		keyboards = append(keyboards, kb)
		keyboardOf = append(keyboardOf, i)
		seats = append(seats, Seat{Name: nameAt(cfg.Names, i), Controls: kb, Bindings: input.FireBindings()})
	}
	return newSession(cfg, screens, keyboards, keyboardOf, seats)
}

func newSession(cfg Config, screens []tcell.Screen, keyboards []*input.Keyboard, keyboardOf []int, seats []Seat) (*Session, error) {
	g, err := New(cfg, seats)
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:        cfg,
		game:       g,
		screens:    screens,
		keyboards:  keyboards,
		keyboardOf: keyboardOf,
		events:     make(chan screenEvent, 64),
		done:       make(chan struct{}),
	}
	for _, sc := range screens {
		s.renderers = append(s.renderers, render.NewRenderer(sc))
	}
	return s, nil
}

func nameAt(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("P%d", i+1)
}

// Game returns the game being played.
func (s *Session) Game() *Game { return s.game }

// SetCues routes the game's sound cues to c.
func (s *Session) SetCues(c audio.Cues) { s.game.SetCues(c) }

// Run plays until the run is won or someone quits, saves the run log, shows
// the end screen after a victory and finalizes every screen. It returns the
// run's log.
func (s *Session) Run() RunLog {
	defer func() {
		close(s.done)
		for _, sc := range s.screens {
			sc.Fini()
		}
	}()

	for i, sc := range s.screens {
		go s.poll(i, sc)
	}

	ticker := time.NewTicker(s.cfg.frameTime())
	defer ticker.Stop()

	s.drawAll()
	for s.game.State() == StatePlaying {
		select {
		case se := <-s.events:
			s.handleEvent(se)
		case now := <-ticker.C:
			s.tick(now)
		}
	}

	log := s.game.Log()
	log.stamp(time.Now())
	saveRunLog(s.cfg.DataDir, log)

	if s.game.State() == StateVictory {
		s.showEnd(log)
	}
	return log
}

// poll forwards the events of one screen until it is finalized.
func (s *Session) poll(i int, sc tcell.Screen) {
	for {
		ev := sc.PollEvent()
		select {
		case s.events <- screenEvent{screen: i, ev: ev}:
		case <-s.done:
			return
		}
		if ev == nil {
			return
		}
	}
}

func (s *Session) handleEvent(se screenEvent) {
	switch ev := se.ev.(type) {
	case nil:
		s.game.Quit()
	case *tcell.EventKey:
		if isQuit(ev) {
			s.game.Quit()
			return
		}
		s.keyboards[s.keyboardOf[se.screen]].Press(input.KeyOf(ev), ev.When())
	case *tcell.EventResize:
		s.screens[se.screen].Sync()
		s.renderers[se.screen].Draw(s.game.View())
	}
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// tick advances the game one frame at time now and redraws.
func (s *Session) tick(now time.Time) {
	for _, kb := range s.keyboards {
		kb.Advance(now)
	}
	s.game.Update(s.cfg.frameTime().Seconds())
	s.drawAll()
}

func (s *Session) drawAll() {
	v := s.game.View()
	for _, r := range s.renderers {
		r.Draw(v)
	}
}

// showEnd displays the run summary on every screen until a player presses
// Q or Esc, or a screen goes away.
func (s *Session) showEnd(log RunLog) {
	elapsed := time.Duration(log.Frames) * s.cfg.frameTime()
	stats := []render.Stat{
		{Label: "Players:", Value: strings.Join(log.Players, " & ")},
		{Label: "Areas:", Value: strings.Join(log.AreasVisited, " → ")},
		{Label: "Deaths:", Value: fmt.Sprint(log.Deaths)},
		{Label: "Enemies slain:", Value: fmt.Sprint(log.EnemiesKilled)},
		{Label: "Orbs:", Value: fmt.Sprint(log.Orbs)},
		{Label: "Time:", Value: elapsed.Round(time.Second).String()},
	}
	draw := func(r *render.Renderer) {
		r.DrawEnd(true, "THE WAY OUT STANDS OPEN", stats, s.game.Text("victory"))
	}
	for _, r := range s.renderers {
		draw(r)
	}

	for se := range s.events {
		switch ev := se.ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if r := ev.Rune(); r == 'q' || r == 'Q' || isQuit(ev) {
				return
			}
		case *tcell.EventResize:
			s.screens[se.screen].Sync()
			draw(s.renderers[se.screen])
		}
	}
}
