package engine

import "github.com/lixenwraith/ascii3d/shape"

// Per-tick angle increments at speed 1
// Unequal deltas give a tumbling motion instead of a uniform spin
const (
	DeltaA = 0.07
	DeltaB = 0.03
)

// Advance steps both angles by their base increment scaled by speed
// No wrapping: trig periodicity handles it
func Advance(at shape.Angles, speed float64) shape.Angles {
	return shape.Angles{
		A: at.A + DeltaA*speed,
		B: at.B + DeltaB*speed,
	}
}
