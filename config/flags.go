package config

import (
	"flag"
	"fmt"

	"github.com/lixenwraith/ascii3d/shape"
)

// Flags holds command-line overrides; only flags set explicitly are applied
type Flags struct {
	fs *flag.FlagSet

	ConfigPath string
	PrefsPath  string
	Print      int

	cols, rows    int
	speed         float64
	shapeName     string
	fill          bool
	reducedMotion bool
	fps           int
	sound         bool
	statusBar     bool
	logFile       string
}

// RegisterFlags defines all flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}

	fs.StringVar(&f.ConfigPath, "config", "", "Path to TOML config file")
	fs.StringVar(&f.PrefsPath, "prefs", "", "Path to preference file (default: user config dir)")
	fs.IntVar(&f.Print, "print", 0, "Print N frames to stdout instead of opening the terminal UI")

	fs.IntVar(&f.cols, "cols", d.View.Cols, "Grid width in characters")
	fs.IntVar(&f.rows, "rows", d.View.Rows, "Grid height in characters")
	fs.Float64Var(&f.speed, "speed", d.Motion.Speed, "Animation speed multiplier")
	fs.StringVar(&f.shapeName, "shape", "", "Shape: donut, pyramid, cube (default: saved preference)")
	fs.BoolVar(&f.fill, "fill", d.View.Fill, "Fit the grid to the terminal size")
	fs.BoolVar(&f.reducedMotion, "reduced-motion", false, "Render a single static frame")
	fs.IntVar(&f.fps, "fps", d.Motion.FPS, "Frames per second")
	fs.BoolVar(&f.sound, "sound", d.Audio.Enabled, "Play a tone on shape switch")
	fs.BoolVar(&f.statusBar, "status", d.View.StatusBar, "Show the status line")
	fs.StringVar(&f.logFile, "log", "", "Write logs to this file")
	return f
}

// ShapeSet reports whether -shape was given explicitly
func (f *Flags) ShapeSet() bool {
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "shape" {
			set = true
		}
	})
	return set
}

// Apply copies explicitly set flags over cfg and revalidates
func (f *Flags) Apply(cfg *Config) error {
	var err error
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "cols":
			cfg.View.Cols = f.cols
		case "rows":
			cfg.View.Rows = f.rows
		case "speed":
			cfg.Motion.Speed = f.speed
		case "shape":
			if _, ok := shape.ParseKind(f.shapeName); !ok {
				err = fmt.Errorf("unknown shape %q", f.shapeName)
				return
			}
			cfg.Motion.Shape = f.shapeName
		case "fill":
			cfg.View.Fill = f.fill
		case "reduced-motion":
			cfg.Motion.ReducedMotion = f.reducedMotion
		case "fps":
			cfg.Motion.FPS = f.fps
		case "sound":
			cfg.Audio.Enabled = f.sound
		case "status":
			cfg.View.StatusBar = f.statusBar
		case "log":
			cfg.LogFile = f.logFile
		}
	})
	cfg.Validate()
	return err
}
