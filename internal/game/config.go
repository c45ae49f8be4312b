package game

import (
	"time"

	"icoop/assets"
	"icoop/internal/input"
)

// Config holds the settings of one run.
type Config struct {
	FPS       int
	Seed      int64
	FOVRadius int
	StartArea string
	// Names of the players, fire first.
	Names    []string
	Hold     time.Duration
	Mute     bool
	Language string
	// DataDir overrides where the run log goes; empty means the XDG data dir.
	DataDir string

	DialogWidth int
	DialogLines int
	// MaxMessages caps the message log.
	MaxMessages int
}

// DefaultConfig returns the settings used when no flag overrides them.
func DefaultConfig() Config {
	return Config{
		FPS:         24,
		Seed:        time.Now().UnixNano(),
		FOVRadius:   8,
		StartArea:   assets.StartArea,
		Names:       []string{"Ember", "Brook"},
		Hold:        input.DefaultHold,
		Language:    assets.DefaultLanguage,
		DialogWidth: 52,
		DialogLines: 3,
		MaxMessages: 50,
	}
}

// frameTime is the duration of one update at the configured rate.
func (c Config) frameTime() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 24
	}
	return time.Second / time.Duration(c.FPS)
}
