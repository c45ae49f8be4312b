// icoop is a two-player cooperative puzzle adventure for the terminal. Both
// players share one keyboard: the fire player on the arrows and j/k/l, the
// water player on w/a/s/d and e/f/r.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"icoop/internal/audio"
	"icoop/internal/audio/tones"
	"icoop/internal/game"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames per second")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for generated areas")
	flag.BoolVar(&cfg.Mute, "mute", false, "Disable sound")
	flag.StringVar(&cfg.DataDir, "data", "", "Directory for the run log (default: XDG data dir)")
	flag.StringVar(&cfg.StartArea, "area", cfg.StartArea, "Area to start in")
	names := flag.String("names", strings.Join(cfg.Names, ","), "Comma-separated player names, fire first")
	flag.Parse()
	cfg.Names = strings.Split(*names, ",")

	if err := run(cfg, tcell.NewScreen); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run plays one local session on the screen from newScreen. Every resource
// it opens is released before it returns.
func run(cfg game.Config, newScreen func() (tcell.Screen, error)) error {
	// Sound starts before the screen takes over the terminal.
	var cues audio.Cues = audio.Silent{}
	if !cfg.Mute {
		b, err := tones.NewBeeper()
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer b.Close()
			cues = b
		}
	}

	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	s, err := game.NewLocalSession(cfg, screen)
	if err != nil {
		screen.Fini()
		return err
	}
	s.SetCues(cues)
	if s.Run().Victory {
		fmt.Println("The way out stands open. Well played.")
	}
	return nil
}
