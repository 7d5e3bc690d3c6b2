package shape

import (
	"math"

	"github.com/lixenwraith/ascii3d/render"
)

// insideEpsilon tolerates rounding on shared triangle edges
const insideEpsilon = -0.001

// ScreenVertex is a projected vertex: integer cell coordinates plus camera-space depth
type ScreenVertex struct {
	X, Y int
	Z    float64
}

// FillTriangle rasterizes a triangle into g with barycentric coverage and depth interpolation
// shade maps the interpolated depth of each written cell to a glyph
// Returns false without touching g when the projected area is zero
func FillTriangle(g *render.Grid, v1, v2, v3 ScreenVertex, shade func(depth float64) rune) bool {
	area := float64((v2.X-v1.X)*(v3.Y-v1.Y) - (v3.X-v1.X)*(v2.Y-v1.Y))
	if area == 0 {
		return false
	}

	minX := max(0, min(v1.X, v2.X, v3.X))
	maxX := min(g.Cols()-1, max(v1.X, v2.X, v3.X))
	minY := max(0, min(v1.Y, v2.Y, v3.Y))
	maxY := min(g.Rows()-1, max(v1.Y, v2.Y, v3.Y))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			// Edge functions opposite each vertex, normalized by signed area
			l1 := edge(v2, v3, x, y) / area
			l3 := edge(v1, v2, x, y) / area
			l2 := 1 - l1 - l3
			if l1 < insideEpsilon || l2 < insideEpsilon || l3 < insideEpsilon {
				continue
			}
			depth := v1.Z*l1 + v2.Z*l2 + v3.Z*l3
			g.Plot(x, y, depth, shade(depth))
		}
	}
	return true
}

// edge is twice the signed area of (a, b, p)
func edge(a, b ScreenVertex, x, y int) float64 {
	return float64((b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X))
}

// DrawLine steps from v1 to v2 one cell at a time along the major axis,
// plotting ch with linearly interpolated depth under the nearer-wins test
func DrawLine(g *render.Grid, v1, v2 ScreenVertex, ch rune) {
	dx := v2.X - v1.X
	dy := v2.Y - v1.Y
	steps := max(abs(dx), abs(dy))

	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps != 0 {
			t = float64(i) / float64(steps)
		}
		x := int(math.Floor(float64(v1.X) + float64(dx)*t))
		y := int(math.Floor(float64(v1.Y) + float64(dy)*t))
		g.Plot(x, y, v1.Z+(v2.Z-v1.Z)*t, ch)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
