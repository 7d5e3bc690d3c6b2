package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator is a sine tone with a linear attack and exponential release
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	attack  int
	pos     int
	release float64
}

// NewToneGenerator creates an unbounded tone; wrap with beep.Take for a fixed length
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		attack:  max(sr.N(5*time.Millisecond), 1),
		release: 18,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Min(float64(g.pos)/float64(g.attack), 1.0) * math.Exp(-t*g.release)
		sample := 0.5 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SwitchCue returns the finite shape switch streamer at freq
func SwitchCue(sr beep.SampleRate, freq float64) beep.Streamer {
	return beep.Take(sr.N(switchDuration), NewToneGenerator(sr, freq))
}
