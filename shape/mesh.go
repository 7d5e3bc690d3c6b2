package shape

import "github.com/lixenwraith/ascii3d/vmath"

// Mesh is an immutable vertex list with polygon faces and edges indexing into it
type Mesh struct {
	Vertices []vmath.Vec3F
	Faces    [][]int
	Edges    [][2]int
}

// Triangles fans every face into triangles: a quad [a,b,c,d] yields [a,b,c] and [a,c,d]
// Faces with fewer than three indices are dropped
func (m Mesh) Triangles() [][3]int {
	var tris [][3]int
	for _, f := range m.Faces {
		for i := 1; i+1 < len(f); i++ {
			tris = append(tris, [3]int{f[0], f[i], f[i+1]})
		}
	}
	return tris
}

// PyramidMesh is a square base on y=-1 with the apex at (0,1,0)
var PyramidMesh = Mesh{
	Vertices: []vmath.Vec3F{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1},
		{X: 0, Y: 1, Z: 0},
	},
	Faces: [][]int{
		{0, 1, 2, 3},
		{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
	},
}

// CubeMesh is the ±1 cube: back face 0-3, front face 4-7
var CubeMesh = Mesh{
	Vertices: []vmath.Vec3F{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	},
	Edges: [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	},
}
