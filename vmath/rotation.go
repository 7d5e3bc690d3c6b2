package vmath

import "math"

// Rotation is a two-axis rotation with cached sines and cosines
// Yaw A turns about the Y axis, then pitch B turns about the X axis
type Rotation struct {
	SinA, CosA float64
	SinB, CosB float64
}

// NewRotation precomputes trig terms for angles a and b (radians)
func NewRotation(a, b float64) Rotation {
	sa, ca := math.Sincos(a)
	sb, cb := math.Sincos(b)
	return Rotation{SinA: sa, CosA: ca, SinB: sb, CosB: cb}
}

// Apply rotates v about Y by A then about X by B
//
//	x1 =  x·cosA + z·sinA
//	z1 = -x·sinA + z·cosA
//	y1 =  y·cosB - z1·sinB
//	z2 =  y·sinB + z1·cosB
func (r Rotation) Apply(v Vec3F) Vec3F {
	x1 := v.X*r.CosA + v.Z*r.SinA
	z1 := -v.X*r.SinA + v.Z*r.CosA
	y1 := v.Y*r.CosB - z1*r.SinB
	z2 := v.Y*r.SinB + z1*r.CosB
	return Vec3F{x1, y1, z2}
}

// ApplyAll rotates every vertex into dst, growing dst as needed
func (r Rotation) ApplyAll(dst []Vec3F, src []Vec3F) []Vec3F {
	dst = dst[:0]
	for _, v := range src {
		dst = append(dst, r.Apply(v))
	}
	return dst
}
