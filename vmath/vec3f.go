package vmath

// Vec3F is a float64 3D vector in model or camera space
type Vec3F struct {
	X, Y, Z float64
}
