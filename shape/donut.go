package shape

import (
	"math"

	"github.com/lixenwraith/ascii3d/render"
)

const (
	donutThetaStep = 0.07 // around the tube cross-section sweep (j)
	donutPhiStep   = 0.02 // around the ring sweep (i)
	donutRadius    = 2.0  // ring radius offset added to cos(i)
	donutCamera    = 5.0  // K: distance term, keeps the divisor positive
	donutScaleX    = 30.0
	donutScaleY    = 15.0
)

// DonutRenderer draws a shaded torus with a perspective divisor
// Depth is D = 1/(z+K); larger D is nearer, so the buffer starts at 0
type DonutRenderer struct{}

func NewDonutRenderer() *DonutRenderer {
	return &DonutRenderer{}
}

func (r *DonutRenderer) EmptyDepth() float64 {
	return 0
}

func (r *DonutRenderer) Render(g *render.Grid, a, b float64) {
	sinA, cosA := math.Sincos(a)
	sinB, cosB := math.Sincos(b)
	cx := float64(g.Cols()) / 2
	cy := float64(g.Rows()) / 2

	for j := 0.0; j < 2*math.Pi; j += donutThetaStep {
		sinJ, cosJ := math.Sincos(j)
		for i := 0.0; i < 2*math.Pi; i += donutPhiStep {
			sinI, cosI := math.Sincos(i)

			h := cosI + donutRadius
			denom := sinJ*h*sinA + sinI*cosA + donutCamera
			if denom == 0 {
				continue
			}
			d := 1 / denom
			if math.IsInf(d, 0) || math.IsNaN(d) {
				continue
			}
			t := sinJ*h*cosA - sinI*sinA

			x := int(math.Floor(cx + donutScaleX*d*(cosJ*h*cosB-t*sinB)))
			y := int(math.Floor(cy + donutScaleY*d*(cosJ*h*sinB+t*cosB)))

			// Surface normal against a fixed light direction
			lum := cosI*cosJ*sinB - cosI*sinJ*cosB - sinI*cosA
			g.Plot(x, y, d, render.Shade(max(0, lum)))
		}
	}
}
