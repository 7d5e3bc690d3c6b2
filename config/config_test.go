package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/ascii3d/shape"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.View.Cols != 48 || cfg.View.Rows != 20 {
		t.Errorf("Expected 48x20, got %dx%d", cfg.View.Cols, cfg.View.Rows)
	}
	if cfg.Motion.Speed != 1 {
		t.Errorf("Expected speed 1, got %v", cfg.Motion.Speed)
	}
	if cfg.ShapeKind() != shape.Donut {
		t.Errorf("Expected donut, got %v", cfg.ShapeKind())
	}
	if cfg.Motion.ReducedMotion || cfg.View.Fill || cfg.Audio.Enabled {
		t.Error("Expected reduced motion, fill and audio off by default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ascii3d.toml")
	data := `log_file = "/tmp/ascii3d.log"

[view]
cols = 80
fill = true

[motion]
shape = "Cube"
speed = 2
reduced_motion = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.View.Cols != 80 {
		t.Errorf("Expected cols 80, got %d", cfg.View.Cols)
	}
	if cfg.View.Rows != 20 {
		t.Errorf("Expected rows to keep default 20, got %d", cfg.View.Rows)
	}
	if !cfg.View.Fill || !cfg.Motion.ReducedMotion {
		t.Error("Expected fill and reduced motion from file")
	}
	if cfg.Motion.Speed != 2 {
		t.Errorf("Expected speed 2, got %v", cfg.Motion.Speed)
	}
	if cfg.Motion.Shape != "cube" {
		t.Errorf("Expected normalized shape cube, got %q", cfg.Motion.Shape)
	}
	if cfg.LogFile != "/tmp/ascii3d.log" {
		t.Errorf("Expected log file, got %q", cfg.LogFile)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[view\ncols = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if cfg != Default() {
		t.Errorf("Expected defaults on error, got %+v", cfg)
	}
}

func TestValidateClamps(t *testing.T) {
	tests := []struct {
		name string
		in   func(*Config)
		want func(Config) bool
	}{
		{"zero cols", func(c *Config) { c.View.Cols = 0 }, func(c Config) bool { return c.View.Cols == 1 }},
		{"negative rows", func(c *Config) { c.View.Rows = -4 }, func(c Config) bool { return c.View.Rows == 1 }},
		{"fps low", func(c *Config) { c.Motion.FPS = 0 }, func(c Config) bool { return c.Motion.FPS == MinFPS }},
		{"fps high", func(c *Config) { c.Motion.FPS = 1000 }, func(c Config) bool { return c.Motion.FPS == MaxFPS }},
		{"speed high", func(c *Config) { c.Motion.Speed = 1e9 }, func(c Config) bool { return c.Motion.Speed == MaxSpeed }},
		{"negative speed kept", func(c *Config) { c.Motion.Speed = -2 }, func(c Config) bool { return c.Motion.Speed == -2 }},
		{"unknown shape", func(c *Config) { c.Motion.Shape = "sphere" }, func(c Config) bool { return c.Motion.Shape == "donut" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.in(&cfg)
			cfg.Validate()
			if !tt.want(cfg) {
				t.Errorf("Unexpected config after Validate: %+v", cfg)
			}
		})
	}
}

func TestReducedMotionFromEnv(t *testing.T) {
	tests := []struct {
		env  map[string]string
		want bool
	}{
		{map[string]string{}, false},
		{map[string]string{"ASCII3D_REDUCED_MOTION": "1"}, true},
		{map[string]string{"REDUCE_MOTION": "reduce"}, true},
		{map[string]string{"REDUCE_MOTION": "no-preference"}, false},
		{map[string]string{"ASCII3D_REDUCED_MOTION": " TRUE "}, true},
	}

	for _, tt := range tests {
		got := ReducedMotionFromEnv(func(k string) string { return tt.env[k] })
		if got != tt.want {
			t.Errorf("env %v: expected %v, got %v", tt.env, tt.want, got)
		}
	}
}

func TestFlagsApplyOnlySet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-rows", "30", "-shape", "pyramid", "-reduced-motion"}); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.View.Cols = 90 // from file, not overridden
	if err := f.Apply(&cfg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if cfg.View.Cols != 90 {
		t.Errorf("Expected cols 90 untouched, got %d", cfg.View.Cols)
	}
	if cfg.View.Rows != 30 {
		t.Errorf("Expected rows 30, got %d", cfg.View.Rows)
	}
	if cfg.ShapeKind() != shape.Pyramid {
		t.Errorf("Expected pyramid, got %v", cfg.ShapeKind())
	}
	if !cfg.Motion.ReducedMotion {
		t.Error("Expected reduced motion")
	}
	if !f.ShapeSet() {
		t.Error("Expected ShapeSet true")
	}
}

func TestFlagsUnknownShape(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-shape", "sphere"}); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := f.Apply(&cfg); err == nil {
		t.Error("Expected error for unknown shape")
	}
	if cfg.ShapeKind() != shape.Donut {
		t.Errorf("Expected shape unchanged, got %v", cfg.ShapeKind())
	}
}
