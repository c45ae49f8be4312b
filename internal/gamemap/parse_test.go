package gamemap

import (
	"errors"
	"testing"
)

func TestParseTerrainAndMarkers(t *testing.T) {
	m, markers, err := Parse([]string{
		"#####",
		"#1.a#",
		"#X. ",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Width != 5 || m.Height != 3 {
		t.Fatalf("size = %dx%d; want 5x3", m.Width, m.Height)
	}
	if m.At(Point{0, 0}).Kind != TileWall {
		t.Error("'#' should be a wall")
	}
	if m.At(Point{1, 2}).Kind != TileImpassable {
		t.Error("'X' should be impassable")
	}
	if m.At(Point{3, 2}).Kind != TileVoid {
		t.Error("' ' should be void")
	}
	if m.At(Point{4, 2}).Kind != TileVoid {
		t.Error("short rows should pad with void")
	}
	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(markers))
	}
	if markers[0].Rune != '1' || markers[0].At != (Point{1, 1}) {
		t.Errorf("first marker = %+v", markers[0])
	}
	if markers[1].Rune != 'a' || markers[1].At != (Point{3, 1}) {
		t.Errorf("second marker = %+v", markers[1])
	}
	if !m.IsWalkable(markers[1].At) {
		t.Error("marker cells should be floor")
	}
}

func TestParseEmpty(t *testing.T) {
	for _, rows := range [][]string{nil, {""}} {
		if _, _, err := Parse(rows); !errors.Is(err, ErrEmptyLayout) {
			t.Errorf("Parse(%q) err = %v; want ErrEmptyLayout", rows, err)
		}
	}
}

func TestParseRejectsControlRunes(t *testing.T) {
	if _, _, err := Parse([]string{"#\t#"}); err == nil {
		t.Error("expected an error for a tab in the layout")
	}
}
