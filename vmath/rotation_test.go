package vmath

import (
	"math"
	"testing"
)

func near(a, b Vec3F) bool {
	const eps = 1e-12
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestRotationIdentity(t *testing.T) {
	v := Vec3F{1, -2, 3}
	if got := NewRotation(0, 0).Apply(v); !near(got, v) {
		t.Errorf("Expected identity, got %+v", got)
	}
}

func TestRotationYawThenPitch(t *testing.T) {
	// Quarter yaw sends +X to -Z
	got := NewRotation(math.Pi/2, 0).Apply(Vec3F{1, 0, 0})
	if !near(got, Vec3F{0, 0, -1}) {
		t.Errorf("Expected (0,0,-1), got %+v", got)
	}

	// Quarter pitch sends +Y to +Z
	got = NewRotation(0, math.Pi/2).Apply(Vec3F{0, 1, 0})
	if !near(got, Vec3F{0, 0, 1}) {
		t.Errorf("Expected (0,0,1), got %+v", got)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	r := NewRotation(0.7, 1.9)
	v := Vec3F{1, 1, 1}
	if d := math.Abs(length(r.Apply(v)) - length(v)); d > 1e-12 {
		t.Errorf("Expected length preserved, diff %v", d)
	}
}

func TestApplyAllReusesBuffer(t *testing.T) {
	src := []Vec3F{{1, 0, 0}, {0, 1, 0}}
	dst := make([]Vec3F, 0, 4)
	out := NewRotation(0.1, 0.2).ApplyAll(dst, src)
	if len(out) != 2 || &out[0] != &dst[:1][0] {
		t.Error("Expected results written into provided buffer")
	}
}

func length(v Vec3F) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
