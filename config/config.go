// Package config loads renderer settings from TOML and command-line flags,
// and persists the selected shape between runs
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/lixenwraith/ascii3d/render"
	"github.com/lixenwraith/ascii3d/shape"
	"github.com/lixenwraith/ascii3d/toml"
)

// Limits applied by Validate
const (
	MinFPS   = 1
	MaxFPS   = 240
	MaxSpeed = 50.0
)

// ViewConfig sizes the grid
type ViewConfig struct {
	Cols      int  `toml:"cols"`
	Rows      int  `toml:"rows"`
	Fill      bool `toml:"fill"`
	StatusBar bool `toml:"status_bar"`
}

// MotionConfig controls animation
type MotionConfig struct {
	Shape         string  `toml:"shape"`
	Speed         float64 `toml:"speed"`
	FPS           int     `toml:"fps"`
	ReducedMotion bool    `toml:"reduced_motion"`
}

// AudioConfig toggles the shape switch cue
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// Config is the full application configuration
type Config struct {
	LogFile string       `toml:"log_file"`
	View    ViewConfig   `toml:"view"`
	Motion  MotionConfig `toml:"motion"`
	Audio   AudioConfig  `toml:"audio"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		View: ViewConfig{
			Cols:      48,
			Rows:      20,
			StatusBar: true,
		},
		Motion: MotionConfig{
			Shape: shape.Default.String(),
			Speed: 1,
			FPS:   60,
		},
	}
}

// Load reads path over the defaults; a missing file yields the defaults
// An empty path skips the file entirely
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// Validate clamps every field into its usable range
func (c *Config) Validate() {
	c.View.Cols = max(c.View.Cols, 1)
	c.View.Rows = max(c.View.Rows, 1)

	if math.IsNaN(c.Motion.Speed) || math.IsInf(c.Motion.Speed, 0) {
		c.Motion.Speed = 1
	}
	c.Motion.Speed = render.Clamp(c.Motion.Speed, -MaxSpeed, MaxSpeed)
	c.Motion.FPS = render.Clamp(c.Motion.FPS, MinFPS, MaxFPS)

	if k, ok := shape.ParseKind(c.Motion.Shape); ok {
		c.Motion.Shape = k.String()
	} else {
		c.Motion.Shape = shape.Default.String()
	}
}

// ShapeKind resolves the configured shape name
func (c Config) ShapeKind() shape.Kind {
	k, _ := shape.ParseKind(c.Motion.Shape)
	return k
}

// reducedMotionEnv lists variables whose truthy value requests reduced motion
var reducedMotionEnv = []string{"ASCII3D_REDUCED_MOTION", "REDUCE_MOTION"}

// ReducedMotionFromEnv reads the host reduced-motion preference once
func ReducedMotionFromEnv(getenv func(string) string) bool {
	for _, name := range reducedMotionEnv {
		switch strings.ToLower(strings.TrimSpace(getenv(name))) {
		case "1", "true", "yes", "on", "reduce":
			return true
		}
	}
	return false
}
