package shape

import (
	"math"

	"github.com/lixenwraith/ascii3d/render"
	"github.com/lixenwraith/ascii3d/vmath"
)

// CubeGlyph marks every traced wireframe cell
const CubeGlyph = '#'

// CubeRenderer traces the twelve edges of CubeMesh, no face fill
type CubeRenderer struct {
	mesh      Mesh
	rotated   []vmath.Vec3F
	projected []ScreenVertex
}

func NewCubeRenderer() *CubeRenderer {
	return &CubeRenderer{
		mesh:      CubeMesh,
		rotated:   make([]vmath.Vec3F, 0, len(CubeMesh.Vertices)),
		projected: make([]ScreenVertex, 0, len(CubeMesh.Vertices)),
	}
}

func (r *CubeRenderer) EmptyDepth() float64 {
	return math.Inf(-1)
}

func (r *CubeRenderer) Render(g *render.Grid, a, b float64) {
	cols, rows := float64(g.Cols()), float64(g.Rows())

	// Yaw runs opposite to the pyramid: x1 = x·cosA - z·sinA
	r.rotated = vmath.NewRotation(-a, b).ApplyAll(r.rotated, r.mesh.Vertices)
	r.projected = r.projected[:0]
	for _, v := range r.rotated {
		r.projected = append(r.projected, ScreenVertex{
			X: int(math.Floor(cols/2 + v.X*cols/4)),
			Y: int(math.Floor(rows/2 + v.Y*rows/4)),
			Z: v.Z,
		})
	}

	for _, e := range r.mesh.Edges {
		DrawLine(g, r.projected[e[0]], r.projected[e[1]], CubeGlyph)
	}
}

// Projected returns the screen vertices of the last rendered frame
func (r *CubeRenderer) Projected() []ScreenVertex {
	return r.projected
}
