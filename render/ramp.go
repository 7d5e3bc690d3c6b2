package render

import "math"

// ShadeRamp orders glyphs from sparsest to densest visual weight
const ShadeRamp = ".,-~:;=!*#$@"

var rampRunes = []rune(ShadeRamp)

// RampLen is the number of glyphs in ShadeRamp
var RampLen = len(rampRunes)

// ShadeIndex maps a normalized brightness to a ramp index in [0, RampLen-1]
// v is clamped to [0,1] first; NaN maps to 0
func ShadeIndex(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	v = Clamp(v, 0, 1)
	return Clamp(int(math.Floor(v*float64(RampLen-1))), 0, RampLen-1)
}

// Shade returns the ramp glyph for a normalized brightness
func Shade(v float64) rune {
	return rampRunes[ShadeIndex(v)]
}

// Density returns the ramp position of ch normalized to [0,1], -1 if ch is not a ramp glyph
func Density(ch rune) float64 {
	for i, r := range rampRunes {
		if r == ch {
			return float64(i) / float64(RampLen-1)
		}
	}
	return -1
}
