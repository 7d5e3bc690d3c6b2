package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii3d/audio"
	"github.com/lixenwraith/ascii3d/config"
	"github.com/lixenwraith/ascii3d/core"
	"github.com/lixenwraith/ascii3d/shape"
	"github.com/lixenwraith/ascii3d/terminal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code; deferred cleanup always completes before main exits
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ascii3d", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := flags.Apply(&cfg); err != nil {
		fmt.Fprintf(stderr, "Invalid flags: %v\n", err)
		return 1
	}
	if config.ReducedMotionFromEnv(os.Getenv) {
		cfg.Motion.ReducedMotion = true
	}

	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
	}
	if logFile != nil {
		defer func() {
			log.SetOutput(io.Discard)
			logFile.Close()
		}()
	}

	prefsPath := flags.PrefsPath
	if prefsPath == "" {
		if prefsPath, err = config.DefaultPrefsPath(); err != nil {
			log.Printf("prefs disabled: %v", err)
		}
	}
	prefs := config.NewPrefs(prefsPath)
	kind := resolveShape(cfg, flags, prefs)

	if flags.Print > 0 {
		if err := printFrames(stdout, cfg, kind, flags.Print); err != nil {
			log.Printf("print failed: %v", err)
			fmt.Fprintf(stderr, "Failed to print frames: %v\n", err)
			return 1
		}
		return 0
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	surface := terminal.New(screen, cfg.View.StatusBar)
	if err := surface.Init(); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashCleanup(surface.Fini)
	defer surface.Fini()

	sound := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// Audio is optional
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	a := newApp(cfg, kind, surface, prefs, sound, nil)
	a.start()
	defer a.stop()

	a.run(surface.Events(), nil)
	return 0
}

// resolveShape picks -shape, then the saved preference, then the config file
func resolveShape(cfg config.Config, flags *config.Flags, prefs *config.Prefs) shape.Kind {
	if flags.ShapeSet() {
		return cfg.ShapeKind()
	}
	if k, ok := prefs.LoadShape(); ok {
		return k
	}
	return cfg.ShapeKind()
}
