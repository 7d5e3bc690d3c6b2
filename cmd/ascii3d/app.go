package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii3d/audio"
	"github.com/lixenwraith/ascii3d/config"
	"github.com/lixenwraith/ascii3d/engine"
	"github.com/lixenwraith/ascii3d/render"
	"github.com/lixenwraith/ascii3d/shape"
	"github.com/lixenwraith/ascii3d/terminal"
)

// Speed bounds reachable from the keyboard
const (
	minKeySpeed = terminal.SpeedStep
	maxKeySpeed = 8.0
)

// app ties the driver to the terminal surface and keyboard
// kind, speed and soundOn are owned by the event loop goroutine
type app struct {
	cfg     config.Config
	surface *terminal.Surface
	driver  *engine.Driver
	sound   *audio.SoundManager
	prefs   *config.Prefs

	kind    shape.Kind
	speed   float64
	soundOn bool
}

func newApp(cfg config.Config, k shape.Kind, surface *terminal.Surface, prefs *config.Prefs, sound *audio.SoundManager, newTicker engine.TickerFunc) *app {
	a := &app{
		cfg:     cfg,
		surface: surface,
		sound:   sound,
		prefs:   prefs,
		kind:    k,
		speed:   cfg.Motion.Speed,
		soundOn: cfg.Audio.Enabled && sound != nil && sound.Initialized(),
	}

	a.driver = engine.NewDriver(engine.Options{
		Cols:          cfg.View.Cols,
		Rows:          cfg.View.Rows,
		Speed:         cfg.Motion.Speed,
		Shape:         k,
		ReducedMotion: cfg.Motion.ReducedMotion,
		Fill:          cfg.View.Fill,
		CharWidth:     1,
		CharHeight:    1,
		MinCols:       engine.MinFillCols,
		MinRows:       engine.MinFillRows,
		Interval:      time.Second / time.Duration(cfg.Motion.FPS),
		NewTicker:     newTicker,
	}, surface)
	a.updateStatus()
	return a
}

func (a *app) start() {
	a.driver.Observe(a.surface)
	a.driver.Start()
}

// run processes events until quit, the event channel closes, or done is closed
func (a *app) run(events <-chan tcell.Event, done <-chan struct{}) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !a.handle(ev) {
				return
			}
		case <-done:
			return
		}
	}
}

// handle applies one event, returning false to quit
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.surface.HandleResize()

	case *tcell.EventKey:
		cmd := terminal.Translate(ev)
		switch cmd.Action {
		case terminal.ActionQuit:
			return false
		case terminal.ActionNextShape:
			a.switchShape(a.kind.Next())
		case terminal.ActionSelectShape:
			a.switchShape(cmd.Shape)
		case terminal.ActionToggleSound:
			a.toggleSound()
		case terminal.ActionFaster:
			a.setSpeed(a.speed + terminal.SpeedStep)
		case terminal.ActionSlower:
			a.setSpeed(a.speed - terminal.SpeedStep)
		}
	}
	return true
}

func (a *app) switchShape(k shape.Kind) {
	if k == a.kind {
		return
	}
	a.kind = k
	a.driver.SetShape(k)
	if a.soundOn {
		a.sound.PlaySwitch(k)
	}
	log.Printf("shape: %s", k)
}

func (a *app) setSpeed(s float64) {
	s = render.Clamp(s, minKeySpeed, maxKeySpeed)
	if s == a.speed {
		return
	}
	a.speed = s
	a.driver.SetSpeed(s)
}

func (a *app) toggleSound() {
	if a.sound == nil {
		return
	}
	if !a.soundOn && !a.sound.Initialized() {
		if err := a.sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
			a.surface.SetStatus("sound:unavailable")
			return
		}
	}
	a.soundOn = !a.soundOn
	a.updateStatus()
}

func (a *app) updateStatus() {
	state := "off"
	if a.soundOn {
		state = "on"
	}
	a.surface.SetStatus(fmt.Sprintf("%dfps sound:%s", a.cfg.Motion.FPS, state))
}

// stop halts the driver and persists the current shape
func (a *app) stop() {
	a.driver.Stop()
	if err := a.prefs.SaveShape(a.kind); err != nil {
		log.Printf("Failed to save prefs: %v", err)
	}
	if a.sound != nil {
		a.sound.Cleanup()
	}
}
