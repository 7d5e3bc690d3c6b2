// Package shape holds the procedural ASCII renderers: a shaded torus,
// a z-buffered triangulated pyramid and a wireframe cube
//
// Every renderer draws into a render.Grid reset with its own empty depth;
// all of them treat larger depth as nearer to the viewer under their own projection
package shape

import (
	"strings"

	"github.com/lixenwraith/ascii3d/render"
)

// Kind selects one of the closed set of shapes
type Kind uint8

const (
	Donut Kind = iota
	Pyramid
	Cube
	kindCount
)

// Default is the shape used when no valid selection is available
const Default = Donut

var kindNames = [kindCount]string{
	Donut:   "donut",
	Pyramid: "pyramid",
	Cube:    "cube",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the known shapes
func (k Kind) Valid() bool {
	return k < kindCount
}

// Next returns the following shape, wrapping to the first
func (k Kind) Next() Kind {
	if !k.Valid() {
		return Default
	}
	return (k + 1) % kindCount
}

// Kinds lists all shapes in cycle order
func Kinds() []Kind {
	return []Kind{Donut, Pyramid, Cube}
}

// ParseKind resolves a shape name, case-insensitive
// Unknown or empty names return Default and false
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return Default, false
}

// Angles is a rotation state pair in radians
type Angles struct {
	A, B float64
}

// StaticAngles returns the fixed pose used when motion is disabled
func StaticAngles(k Kind) Angles {
	switch k {
	case Pyramid:
		return Angles{A: 1.2, B: 0.7}
	case Cube:
		return Angles{A: 0.7, B: 0.4}
	default:
		return Angles{A: 1.2, B: 1.6}
	}
}

// Renderer rasterizes one shape for a rotation pose
type Renderer interface {
	// EmptyDepth is the depth value every cell starts a frame with
	EmptyDepth() float64
	// Render draws into g, which has already been reset with EmptyDepth
	Render(g *render.Grid, a, b float64)
}

// New returns a fresh renderer for k, the donut renderer for unknown kinds
func New(k Kind) Renderer {
	switch k {
	case Pyramid:
		return NewPyramidRenderer()
	case Cube:
		return NewCubeRenderer()
	default:
		return NewDonutRenderer()
	}
}

// Dispatcher owns one renderer per shape and routes frames by Kind
// Not safe for concurrent use; renderers keep per-frame scratch space
type Dispatcher struct {
	renderers [kindCount]Renderer
}

// NewDispatcher creates renderers for every shape
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{}
	for _, k := range Kinds() {
		d.renderers[k] = New(k)
	}
	return d
}

// Render resets g to cols×rows with the shape's empty depth and draws the shape
func (d *Dispatcher) Render(k Kind, g *render.Grid, cols, rows int, at Angles) {
	if !k.Valid() {
		k = Default
	}
	r := d.renderers[k]
	g.Reset(cols, rows, r.EmptyDepth())
	r.Render(g, at.A, at.B)
}
