// Package audio names the sound cues the game raises and lets callers choose
// how to play them.
package audio

// Cue identifies a sound.
type Cue uint8

const (
	CueExplosion Cue = iota
	CueHurt
	CuePickup
	CueDoor
	CueEnemyDown
	CueDeath
	CueVictory
)

func (c Cue) String() string {
	switch c {
	case CueExplosion:
		return "explosion"
	case CueHurt:
		return "hurt"
	case CuePickup:
		return "pickup"
	case CueDoor:
		return "door"
	case CueEnemyDown:
		return "enemy-down"
	case CueDeath:
		return "death"
	case CueVictory:
		return "victory"
	}
	return "unknown"
}

// Cues plays sound cues. Implementations must not block the game loop.
type Cues interface {
	Play(Cue)
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(Cue) {}
