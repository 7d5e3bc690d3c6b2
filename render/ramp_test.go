package render

import (
	"math"
	"testing"
)

func TestShadeIndexClamps(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{0.5, 5},
		{1, RampLen - 1},
		{50, RampLen - 1},
		{math.Inf(1), RampLen - 1},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		got := ShadeIndex(tt.v)
		if got < 0 || got > RampLen-1 {
			t.Errorf("ShadeIndex(%v) = %d, out of range", tt.v, got)
		}
		if got != tt.want {
			t.Errorf("ShadeIndex(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestShadeEndpoints(t *testing.T) {
	if c := Shade(0); c != '.' {
		t.Errorf("Expected '.', got %q", c)
	}
	if c := Shade(1); c != '@' {
		t.Errorf("Expected '@', got %q", c)
	}
}

func TestDensity(t *testing.T) {
	if d := Density('.'); d != 0 {
		t.Errorf("Expected 0 for '.', got %v", d)
	}
	if d := Density('@'); d != 1 {
		t.Errorf("Expected 1 for '@', got %v", d)
	}
	if d := Density('x'); d != -1 {
		t.Errorf("Expected -1 for non-ramp glyph, got %v", d)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(5, 0, 3); v != 3 {
		t.Errorf("Expected 3, got %d", v)
	}
	if v := Clamp(-0.5, 0.0, 1.0); v != 0 {
		t.Errorf("Expected 0, got %v", v)
	}
	if v := Clamp("m", "a", "z"); v != "m" {
		t.Errorf("Expected m, got %s", v)
	}
}
