package render

import (
	"strings"
	"testing"

	"icoop/assets"
	"icoop/internal/area"
	"icoop/internal/dialog"
	"icoop/internal/entity"
	"icoop/internal/gamemap"
	"icoop/internal/input"

	"github.com/gdamore/tcell/v2"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return ss
}

// rowText returns the primary runes of screen row y.
func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(s, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func testView(t *testing.T) (View, *entity.Player) {
	t.Helper()
	gmap, _, err := gamemap.Parse([]string{
		"#####",
		"#...#",
		"#...#",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}
	a := area.New("test", gmap)
	p := entity.NewPlayer(entity.NewEnv(1), "Ember", entity.ElementFire, nil, input.FireBindings())
	p.SetPosition(gamemap.Point{X: 2, Y: 2})
	a.Register(p)
	a.Flush()
	gmap.ClearVisibility()
	gmap.CastFOV(p.Position(), 8)

	return View{
		Area:     a,
		Tiles:    assets.DefaultTiles,
		Title:    "Test Hall",
		Center:   p.Position(),
		Players:  []*entity.Player{p},
		Messages: []string{"first", "second", "third"},
	}, p
}

func TestCameraCenter(t *testing.T) {
	c := NewCamera(10, 5, 40, 20)
	sx, sy, ok := c.WorldToScreen(10, 5)
	if !ok {
		t.Fatal("centre must be on screen")
	}
	if sx != 20 || sy != 10 {
		t.Errorf("centre at (%d,%d); want (20,10)", sx, sy)
	}
	if wx, wy := c.ScreenToWorld(sx, sy); wx != 10 || wy != 5 {
		t.Errorf("round trip = (%d,%d); want (10,5)", wx, wy)
	}
	if _, _, ok := c.WorldToScreen(-20, 5); ok {
		t.Error("far left cell must be off screen")
	}
}

func TestCameraResizeKeepsCentre(t *testing.T) {
	c := NewCamera(10, 5, 40, 20)
	c.Resize(60, 30)
	sx, sy, _ := c.WorldToScreen(10, 5)
	if sx != 30 || sy != 15 {
		t.Errorf("centre after resize at (%d,%d); want (30,15)", sx, sy)
	}
}

func TestDrawPlacesPlayerAtCentre(t *testing.T) {
	ss := newSimScreen(t)
	v, p := testView(t)
	r := NewRenderer(ss)
	r.Draw(v)

	sx, sy, ok := r.WorldToScreen(p.Position())
	if !ok {
		t.Fatal("player must be on screen")
	}
	s, _ := p.Sprite()
	got, _, _, _ := ss.GetContent(sx, sy)
	if want := []rune(s.Glyph)[0]; got != want {
		t.Errorf("cell (%d,%d) = %q; want %q", sx, sy, got, want)
	}
}

func TestDrawHidesUnseenActors(t *testing.T) {
	ss := newSimScreen(t)
	v, _ := testView(t)
	heart := entity.NewHeart(entity.NewEnv(1), gamemap.Point{X: 1, Y: 1})
	v.Area.Register(heart)
	v.Area.Flush()
	v.Area.Map.At(heart.Position()).Visible = false

	r := NewRenderer(ss)
	r.Draw(v)

	hs, _ := heart.Sprite()
	sx, sy, _ := r.WorldToScreen(heart.Position())
	if got, _, _, _ := ss.GetContent(sx, sy); got == []rune(hs.Glyph)[0] {
		t.Error("an actor on an unseen tile must not be drawn")
	}
}

func TestHUDShowsPlayersAndMessages(t *testing.T) {
	ss := newSimScreen(t)
	v, _ := testView(t)
	NewRenderer(ss).Draw(v)

	text := screenText(ss)
	for _, want := range []string{"Test Hall", "Ember", "fire", "second", "third"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen lacks %q", want)
		}
	}
	if strings.Contains(text, "first") {
		t.Error("only the last messages fit in the HUD")
	}
}

func TestHUDListsEveryItem(t *testing.T) {
	ss := newSimScreen(t)
	v, p := testView(t)
	p.Inventory.Add(entity.ItemBomb, 3)
	NewRenderer(ss).Draw(v)

	text := screenText(ss)
	if !strings.Contains(text, "sword]") {
		t.Error("the selected item must be named in brackets")
	}
	if !strings.Contains(text, "×3") {
		t.Error("stacked items must show their count")
	}
	if strings.Contains(text, "bomb]") {
		t.Error("only the selected item is named")
	}

	p.Inventory.Cycle()
	NewRenderer(ss).Draw(v)
	if !strings.Contains(screenText(ss), "bomb]") {
		t.Error("cycling must move the selection to the bombs")
	}
}

func TestDialogBox(t *testing.T) {
	ss := newSimScreen(t)
	v, _ := testView(t)
	v.Dialog = dialog.New("k", "Hello there traveller", 30, 2)
	NewRenderer(ss).Draw(v)

	if !strings.Contains(screenText(ss), "Hello there traveller") {
		t.Error("dialog text not drawn")
	}
}

func TestDrawEnd(t *testing.T) {
	tests := []struct {
		won   bool
		badge string
	}{
		{true, "[VICTORY]"},
		{false, "[DEFEAT]"},
	}
	for _, tt := range tests {
		t.Run(tt.badge, func(t *testing.T) {
			ss := newSimScreen(t)
			NewRenderer(ss).DrawEnd(tt.won, "THE END", []Stat{{"Deaths:", "3"}}, "Well played.")
			text := screenText(ss)
			for _, want := range []string{tt.badge, "THE END", "Deaths:", "3", "Well played.", "[Q] Quit"} {
				if !strings.Contains(text, want) {
					t.Errorf("end screen lacks %q", want)
				}
			}
		})
	}
}

func TestItemGlyphs(t *testing.T) {
	for _, it := range []entity.Item{entity.ItemSword, entity.ItemBomb, entity.ItemFireStaff, entity.ItemWaterStaff} {
		if ItemGlyph(it) == ItemGlyph(entity.ItemNone) {
			t.Errorf("item %s has no glyph", it)
		}
	}
}
