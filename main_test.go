package main

import (
	"errors"
	"testing"

	"icoop/internal/factory"
	"icoop/internal/game"

	"github.com/gdamore/tcell/v2"
)

type finiCounter struct {
	tcell.SimulationScreen
	finis int
}

func (f *finiCounter) Fini() {
	f.finis++
	f.SimulationScreen.Fini()
}

func quietConfig(t *testing.T) game.Config {
	cfg := game.DefaultConfig()
	cfg.Mute = true
	cfg.DataDir = t.TempDir()
	return cfg
}

func TestRunReturnsScreenErrors(t *testing.T) {
	errNoTTY := errors.New("no tty")
	err := run(quietConfig(t), func() (tcell.Screen, error) { return nil, errNoTTY })
	if !errors.Is(err, errNoTTY) {
		t.Fatalf("err = %v; want the screen error", err)
	}
}

func TestRunReleasesScreenOnBadArea(t *testing.T) {
	cfg := quietConfig(t)
	cfg.StartArea = "attic"
	sim := &finiCounter{SimulationScreen: tcell.NewSimulationScreen("UTF-8")}
	err := run(cfg, func() (tcell.Screen, error) { return sim, nil })
	if !errors.Is(err, factory.ErrUnknownArea) {
		t.Fatalf("err = %v; want ErrUnknownArea", err)
	}
	if sim.finis != 1 {
		t.Errorf("screen finalized %d times; want 1", sim.finis)
	}
}
