package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/tomz197/bossrush/internal/game"
)

const (
	effectVolume = 0.5
	musicVolume  = 0.25

	collisionDuration = 120 * time.Millisecond
	jumpDuration      = 150 * time.Millisecond
	gameOverNote      = 250 * time.Millisecond
	musicNote         = 200 * time.Millisecond
)

// Descending G4, E4, C4.
var gameOverNotes = []float64{392.00, 329.63, 261.63}

// A minor arpeggio, one bar.
var musicNotes = []float64{110.00, 130.81, 164.81, 220.00, 164.81, 130.81, 110.00, 82.41}

// Effect builds the streamer for a sound effect, or nil for an unknown kind.
func Effect(kind game.SoundKind, volume float64) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case game.SoundCollision:
		s = newSweep(sampleRate, 220, 110, collisionDuration, true)
	case game.SoundJump:
		s = newSweep(sampleRate, 300, 700, jumpDuration, false)
	case game.SoundGameOver:
		s = gameOverJingle(sampleRate)
	default:
		return nil
	}
	return newVolume(s, volume*effectVolume)
}

func gameOverJingle(sr beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, freq := range gameOverNotes {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			continue
		}
		notes = append(notes, beep.Take(sr.N(gameOverNote), tone))
	}
	return beep.Seq(notes...)
}

// newVolume scales s by a linear factor. Zero or less is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sweep is a tone gliding linearly from one frequency to another while
// fading out.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	square   bool
	total    int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration, square bool) *sweep {
	return &sweep{sr: sr, from: from, to: to, square: square, total: sr.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		v := math.Sin(2 * math.Pi * s.phase)
		if s.square {
			v = math.Copysign(1, v)
		}
		v *= 1 - progress

		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// musicGenerator plays musicNotes forever with a short pluck per note.
type musicGenerator struct {
	sr    beep.SampleRate
	note  int // Samples per note
	pos   int
	phase float64
}

func newMusicGenerator(sr beep.SampleRate) *musicGenerator {
	return &musicGenerator{sr: sr, note: sr.N(musicNote)}
}

// Reset rewinds to the first note.
func (g *musicGenerator) Reset() {
	g.pos = 0
	g.phase = 0
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (g.pos / g.note) % len(musicNotes)
		inNote := float64(g.pos%g.note) / float64(g.note)
		freq := musicNotes[idx]

		v := math.Sin(2*math.Pi*g.phase) * math.Exp(-4*inNote)

		samples[i][0] = v
		samples[i][1] = v

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
