// Package terminal hosts rendered frames on a tcell screen
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii3d/core"
	"github.com/lixenwraith/ascii3d/engine"
	"github.com/lixenwraith/ascii3d/render"
)

// Brightness range of the shade-keyed foreground
const (
	minGray = 90
	maxGray = 255
)

const statusHelp = " | space:next 1-3:shape +/-:speed m:sound q:quit"

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)

// Surface draws frames centered on a tcell screen and reports its drawable size
type Surface struct {
	screen    tcell.Screen
	statusBar bool

	mu         sync.Mutex
	width      int
	height     int
	statusText string
	listeners  map[int]func(width, height int)
	nextID     int
	last       engine.Frame
	drawn      uint64

	events    chan tcell.Event
	pumpOnce  sync.Once
	closeOnce sync.Once
	quit      chan struct{}
}

// New wraps screen; Init must be called before use
func New(screen tcell.Screen, statusBar bool) *Surface {
	return &Surface{
		screen:    screen,
		statusBar: statusBar,
		listeners: make(map[int]func(int, int)),
		events:    make(chan tcell.Event, 100),
		quit:      make(chan struct{}),
	}
}

// Init initializes the screen and records its size
func (s *Surface) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()

	w, h := s.screen.Size()
	s.mu.Lock()
	s.width, s.height = w, h
	s.mu.Unlock()
	return nil
}

// Fini restores the terminal and stops the event pump
func (s *Surface) Fini() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}

// Size returns the area available to frames, excluding the status bar
func (s *Surface) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawableLocked()
}

func (s *Surface) drawableLocked() (int, int) {
	h := s.height
	if s.statusBar {
		h--
	}
	return max(s.width, 0), max(h, 0)
}

// Subscribe registers fn for size changes and delivers the current size immediately
func (s *Surface) Subscribe(fn func(width, height int)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	w, h := s.drawableLocked()
	s.mu.Unlock()

	fn(w, h)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Listeners returns the number of active size subscriptions
func (s *Surface) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// HandleResize resyncs the screen and notifies subscribers if the size changed
func (s *Surface) HandleResize() {
	s.screen.Sync()
	w, h := s.screen.Size()

	s.mu.Lock()
	if w == s.width && h == s.height {
		s.mu.Unlock()
		return
	}
	s.width, s.height = w, h
	dw, dh := s.drawableLocked()
	fns := make([]func(int, int), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	last := s.last
	s.mu.Unlock()

	for _, fn := range fns {
		fn(dw, dh)
	}

	// Recenter the last frame until the driver publishes at the new size
	if last.Seq > 0 || last.Static {
		s.Publish(last)
	}
}

// SetStatus sets the trailing status text
func (s *Surface) SetStatus(text string) {
	s.mu.Lock()
	s.statusText = text
	s.mu.Unlock()
}

// Drawn returns the number of frames shown
func (s *Surface) Drawn() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawn
}

// Publish draws fr centered in the drawable area; cells beyond the screen are clipped
func (s *Surface) Publish(fr engine.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = fr
	w, h := s.drawableLocked()
	x0 := max((w-fr.Cols)/2, 0)
	y0 := max((h-fr.Rows)/2, 0)

	s.screen.Clear()
	for y, line := range fr.Lines {
		if y0+y >= h {
			break
		}
		x := x0
		for _, ch := range line {
			if x >= w {
				break
			}
			if ch != render.Blank {
				s.screen.SetContent(x, y0+y, ch, nil, ShadeStyle(ch))
			}
			x++
		}
	}

	if s.statusBar && s.height > 0 {
		s.drawStatusLocked(fr)
	}

	s.screen.Show()
	s.drawn++
}

func (s *Surface) drawStatusLocked(fr engine.Frame) {
	y := s.height - 1
	text := StatusLine(fr)
	if s.statusText != "" {
		text += "  " + s.statusText
	}
	text += statusHelp

	x := 0
	for _, ch := range text {
		if x >= s.width {
			break
		}
		s.screen.SetContent(x, y, ch, nil, statusStyle)
		x++
	}
	for ; x < s.width; x++ {
		s.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

// StatusLine summarizes a frame for the status bar
func StatusLine(fr engine.Frame) string {
	mode := "anim"
	if fr.Static {
		mode = "static"
	}
	return fmt.Sprintf(" %s %dx%d speed %.2f %s", fr.Shape, fr.Cols, fr.Rows, fr.Speed, mode)
}

// ShadeStyle maps denser ramp glyphs to brighter foregrounds
// Glyphs off the ramp use the default style
func ShadeStyle(ch rune) tcell.Style {
	d := render.Density(ch)
	if d < 0 {
		return tcell.StyleDefault
	}
	g := int32(minGray + d*(maxGray-minGray))
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(g, g, g))
}

// Events pumps screen events into a channel; the channel closes after Fini
func (s *Surface) Events() <-chan tcell.Event {
	s.pumpOnce.Do(func() {
		core.Go(s.pump)
	})
	return s.events
}

func (s *Surface) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}
