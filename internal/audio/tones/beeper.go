// Package tones synthesises the game's sound cues and plays them on the
// default audio device.
package tones

import (
	"fmt"
	"math"
	"time"

	"icoop/internal/audio"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// note is one segment of a cue: a tone at freq Hz, or silence when freq is 0.
type note struct {
	freq float64
	dur  time.Duration
	wave wave
}

type wave uint8

const (
	waveSine wave = iota
	waveSquare
)

var melodies = map[audio.Cue][]note{
	audio.CueExplosion: {{freq: 90, dur: 70 * time.Millisecond, wave: waveSquare}, {freq: 60, dur: 120 * time.Millisecond, wave: waveSquare}},
	audio.CueHurt:      {{freq: 220, dur: 80 * time.Millisecond, wave: waveSquare}},
	audio.CuePickup:    {{freq: 660, dur: 60 * time.Millisecond}, {freq: 880, dur: 80 * time.Millisecond}},
	audio.CueDoor:      {{freq: 330, dur: 90 * time.Millisecond}, {freq: 440, dur: 90 * time.Millisecond}},
	audio.CueEnemyDown: {{freq: 520, dur: 50 * time.Millisecond}, {freq: 390, dur: 70 * time.Millisecond}},
	audio.CueDeath:     {{freq: 300, dur: 150 * time.Millisecond}, {freq: 200, dur: 150 * time.Millisecond}, {freq: 120, dur: 250 * time.Millisecond}},
	audio.CueVictory:   {{freq: 523, dur: 120 * time.Millisecond}, {freq: 659, dur: 120 * time.Millisecond}, {freq: 784, dur: 240 * time.Millisecond}},
}

// tone streams one note with a short linear fade out.
type tone struct {
	note
	rate  beep.SampleRate
	phase float64
	pos   int
	total int
}

func newTone(n note, rate beep.SampleRate) *tone {
	return &tone{note: n, rate: rate, total: rate.N(n.dur)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		var v float64
		if t.freq > 0 {
			switch t.wave {
			case waveSquare:
				v = 1
				if t.phase >= 0.5 {
					v = -1
				}
			default:
				v = math.Sin(2 * math.Pi * t.phase)
			}
			v *= 0.2 * float64(t.total-t.pos) / float64(t.total)
			t.phase += t.freq / float64(t.rate)
			t.phase -= math.Floor(t.phase)
		}
		samples[i][0], samples[i][1] = v, v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// streamer returns the sound of c, or nil for an unknown cue.
func streamer(c audio.Cue, rate beep.SampleRate) beep.Streamer {
	notes, ok := melodies[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n, rate))
	}
	return beep.Seq(parts...)
}

// Beeper plays cues as synthesised tones on the default audio device.
type Beeper struct {
	mixer *beep.Mixer
}

// NewBeeper opens the speaker. The error is meant to be logged and
// replaced with audio.Silent: a missing audio device never stops the game.
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("tones: init speaker: %w", err)
	}
	b := &Beeper{mixer: &beep.Mixer{}}
	speaker.Play(b.mixer)
	return b, nil
}

func (b *Beeper) Play(c audio.Cue) {
	s := streamer(c, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

// Close silences anything still playing.
func (b *Beeper) Close() {
	speaker.Clear()
}
