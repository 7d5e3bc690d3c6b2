package shape

import (
	"math"

	"github.com/lixenwraith/ascii3d/render"
	"github.com/lixenwraith/ascii3d/vmath"
)

// PyramidRenderer fills the six triangles of PyramidMesh into a z-buffer
// Projection is orthographic; larger camera-space z is nearer, the buffer starts at -Inf
type PyramidRenderer struct {
	mesh      Mesh
	triangles [][3]int
	rotated   []vmath.Vec3F
	projected []ScreenVertex
}

func NewPyramidRenderer() *PyramidRenderer {
	return &PyramidRenderer{
		mesh:      PyramidMesh,
		triangles: PyramidMesh.Triangles(),
		rotated:   make([]vmath.Vec3F, 0, len(PyramidMesh.Vertices)),
		projected: make([]ScreenVertex, 0, len(PyramidMesh.Vertices)),
	}
}

func (r *PyramidRenderer) EmptyDepth() float64 {
	return math.Inf(-1)
}

func (r *PyramidRenderer) Render(g *render.Grid, a, b float64) {
	cols, rows := float64(g.Cols()), float64(g.Rows())
	scale := math.Min(cols/3, rows/2.2)

	r.rotated = vmath.NewRotation(a, b).ApplyAll(r.rotated, r.mesh.Vertices)
	r.projected = r.projected[:0]
	for _, v := range r.rotated {
		r.projected = append(r.projected, ScreenVertex{
			X: int(math.Floor(cols/2 + v.X*scale)),
			Y: int(math.Floor(rows/2 - v.Y*scale)),
			Z: v.Z,
		})
	}

	for _, tri := range r.triangles {
		FillTriangle(g, r.projected[tri[0]], r.projected[tri[1]], r.projected[tri[2]], pyramidShade)
	}
}

// pyramidShade maps camera-space z in [-1,1] onto the ramp
func pyramidShade(depth float64) rune {
	return render.Shade((depth + 1) / 2)
}
