package engine

import "math"

// Fallbacks used when the host cannot measure
const (
	FallbackCharWidth  = 8.0
	FallbackCharHeight = 14.0
	FallbackWidth      = 300.0
	FallbackHeightFrac = 0.33

	// Fill mode never shrinks the grid below this
	MinFillCols = 20
	MinFillRows = 6
)

// FitGrid converts an available surface area into grid dimensions
// cols = floor(availW/charW), rows = floor(availH/charH), each clamped to its minimum
// Zero or invalid measurements fall back to defaults instead of dividing by zero
func FitGrid(availW, availH, charW, charH float64, minCols, minRows int) (cols, rows int) {
	if !(charW > 0) || math.IsInf(charW, 0) {
		charW = FallbackCharWidth
	}
	if !(charH > 0) || math.IsInf(charH, 0) {
		charH = FallbackCharHeight
	}
	if !(availW > 0) || math.IsInf(availW, 0) {
		availW = FallbackWidth
	}
	if !(availH > 0) || math.IsInf(availH, 0) {
		availH = math.Floor(availW * FallbackHeightFrac)
	}

	cols = max(minCols, int(math.Floor(availW/math.Max(1, charW))))
	rows = max(minRows, int(math.Floor(availH/math.Max(1, charH))))
	return max(cols, 1), max(rows, 1)
}
