package render

import (
	"math"
	"strings"
)

// Blank is the background rune of every fresh grid cell
const Blank = ' '

// Grid is a cols×rows character buffer with a parallel depth buffer
// Both buffers are flat, row-major: index = x + y*cols
// A single Grid is meant to be reused frame over frame via Reset
type Grid struct {
	cols  int
	rows  int
	cells []rune
	depth []float64
}

// NewGrid creates a blank grid; dimensions below 1 are raised to 1
// Depth starts at -Inf, callers rendering with another convention must Reset
func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Reset(cols, rows, math.Inf(-1))
	return g
}

// Cols returns the grid width in characters
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height in characters
func (g *Grid) Rows() int {
	return g.rows
}

// Reset resizes the grid if needed and clears every cell to Blank and every depth to emptyDepth
// Backing storage is reused when capacity allows
func (g *Grid) Reset(cols, rows int, emptyDepth float64) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	n := cols * rows

	if cap(g.cells) < n {
		g.cells = make([]rune, n)
		g.depth = make([]float64, n)
	} else {
		g.cells = g.cells[:n]
		g.depth = g.depth[:n]
	}
	g.cols = cols
	g.rows = rows

	// Copy-doubling fill
	g.cells[0] = Blank
	g.depth[0] = emptyDepth
	for i := 1; i < n; i *= 2 {
		copy(g.cells[i:], g.cells[:i])
		copy(g.depth[i:], g.depth[:i])
	}
}

// InBounds reports whether (x, y) addresses a cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Plot writes ch at (x, y) if depth is strictly greater than the stored depth
// Larger depth is nearer to the viewer; out-of-bounds and non-finite depths are discarded
func (g *Grid) Plot(x, y int, depth float64, ch rune) bool {
	if !g.InBounds(x, y) || math.IsNaN(depth) || math.IsInf(depth, 0) {
		return false
	}
	o := x + y*g.cols
	if depth <= g.depth[o] {
		return false
	}
	g.depth[o] = depth
	g.cells[o] = ch
	return true
}

// Cell returns the rune at (x, y), Blank when out of bounds
func (g *Grid) Cell(x, y int) rune {
	if !g.InBounds(x, y) {
		return Blank
	}
	return g.cells[x+y*g.cols]
}

// Depth returns the stored depth at (x, y)
func (g *Grid) Depth(x, y int) (float64, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.depth[x+y*g.cols], true
}

// Lines returns the grid as rows strings of exactly cols characters
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for y := 0; y < g.rows; y++ {
		lines[y] = string(g.cells[y*g.cols : (y+1)*g.cols])
	}
	return lines
}

// String flattens the grid into rows lines joined by '\n', no trailing newline
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.cells[y*g.cols : (y+1)*g.cols] {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
