package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCueNames(t *testing.T) {
	seen := map[string]bool{}
	for c := CueExplosion; c <= CueVictory; c++ {
		name := c.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "cue %d repeats the name %q", c, name)
		seen[name] = true
	}
	assert.Equal(t, "unknown", Cue(200).String())
}

func TestSilentIsCues(t *testing.T) {
	var c Cues = Silent{}
	c.Play(CueVictory)
}
