package engine

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ascii3d/core"
	"github.com/lixenwraith/ascii3d/render"
	"github.com/lixenwraith/ascii3d/shape"
)

// State is the driver lifecycle: Idle → Running → Stopped
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// DefaultInterval paces continuous rendering at ~60 FPS
const DefaultInterval = time.Second / 60

// Frame is one published rendering
type Frame struct {
	Text   string
	Lines  []string
	Cols   int
	Rows   int
	Shape  shape.Kind
	Angles shape.Angles
	Speed  float64
	Static bool
	Seq    uint64
}

// Publisher receives every frame the driver renders, on the driver goroutine
type Publisher interface {
	Publish(Frame)
}

// PublisherFunc adapts a function to Publisher
type PublisherFunc func(Frame)

func (f PublisherFunc) Publish(fr Frame) { f(fr) }

// ResizeSource delivers host surface size changes until the returned cancel is called
type ResizeSource interface {
	Subscribe(fn func(width, height int)) (cancel func())
}

// Options configures a Driver
type Options struct {
	Cols, Rows    int
	Speed         float64
	Shape         shape.Kind
	ReducedMotion bool

	// Fill derives grid dimensions from host resize notifications via FitGrid
	Fill                  bool
	CharWidth, CharHeight float64
	MinCols, MinRows      int

	Interval  time.Duration
	NewTicker TickerFunc
}

// pending holds coalesced host requests; only the latest of each kind survives
type pending struct {
	size  *[2]int
	kind  *shape.Kind
	speed *float64
}

// Driver runs the render loop on a single goroutine
// Ticks, resizes and shape switches are serialized through one select,
// so rotation state, the grid arena and publication never overlap
type Driver struct {
	opts Options
	out  Publisher

	// Loop-owned state
	dispatch *shape.Dispatcher
	grid     *render.Grid
	angles   shape.Angles
	cols     int
	rows     int
	kind     shape.Kind
	speed    float64
	seq      uint64

	// Host requests
	mu      sync.Mutex
	pending pending
	notify  chan struct{}

	// Resize subscriptions released on Stop
	cancels []func()

	// lifeMu orders Start's launch against Stop's shutdown
	lifeMu   sync.Mutex
	state    atomic.Int32
	frames   atomic.Uint64
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewDriver creates an idle driver publishing to out
func NewDriver(opts Options, out Publisher) *Driver {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.NewTicker == nil {
		opts.NewTicker = NewTimeTicker
	}
	if opts.MinCols <= 0 {
		opts.MinCols = 1
	}
	if opts.MinRows <= 0 {
		opts.MinRows = 1
	}
	if !opts.Shape.Valid() {
		opts.Shape = shape.Default
	}

	d := &Driver{
		opts:     opts,
		out:      out,
		dispatch: shape.NewDispatcher(),
		grid:     render.NewGrid(opts.Cols, opts.Rows),
		cols:     max(opts.Cols, 1),
		rows:     max(opts.Rows, 1),
		kind:     opts.Shape,
		speed:    sanitizeSpeed(opts.Speed),
		notify:   make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
	if opts.ReducedMotion {
		d.angles = shape.StaticAngles(d.kind)
	}
	return d
}

// State returns the current lifecycle state
func (d *Driver) State() State {
	return State(d.state.Load())
}

// Frames returns the number of frames published so far
func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}

// Start moves Idle → Running and launches the loop
// Under reduced motion a single static frame is rendered and no ticker is created
// Start on a running or stopped driver does nothing
func (d *Driver) Start() {
	d.lifeMu.Lock()
	defer d.lifeMu.Unlock()

	if !d.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return
	}

	var ticker Ticker
	if !d.opts.ReducedMotion {
		ticker = d.opts.NewTicker(d.opts.Interval)
	}

	d.wg.Add(1)
	core.Go(func() { d.loop(ticker) })
}

// Stop cancels pending ticks, releases resize subscriptions and waits for the loop
// No frame is published after Stop returns
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		d.lifeMu.Lock()
		d.state.Store(int32(StateStopped))
		close(d.stopChan)
		d.lifeMu.Unlock()
		d.wg.Wait()

		d.mu.Lock()
		cancels := d.cancels
		d.cancels = nil
		d.mu.Unlock()
		for _, cancel := range cancels {
			cancel()
		}
	})
}

// Observe subscribes to host size notifications for the driver's lifetime
// Only meaningful in fill mode; fixed-size drivers ignore notifications
func (d *Driver) Observe(src ResizeSource) {
	cancel := src.Subscribe(func(w, h int) {
		if !d.opts.Fill {
			return
		}
		cols, rows := FitGrid(float64(w), float64(h), d.opts.CharWidth, d.opts.CharHeight, d.opts.MinCols, d.opts.MinRows)
		d.Resize(cols, rows)
	})

	d.mu.Lock()
	if d.State() == StateStopped {
		d.mu.Unlock()
		cancel()
		return
	}
	d.cancels = append(d.cancels, cancel)
	d.mu.Unlock()
}

// Resize requests new grid dimensions for subsequent frames
func (d *Driver) Resize(cols, rows int) {
	size := [2]int{max(cols, 1), max(rows, 1)}
	d.post(func(p *pending) { p.size = &size })
}

// SetShape requests a shape switch; the loop keeps running
func (d *Driver) SetShape(k shape.Kind) {
	if !k.Valid() {
		k = shape.Default
	}
	d.post(func(p *pending) { p.kind = &k })
}

// SetSpeed requests a new speed multiplier
func (d *Driver) SetSpeed(speed float64) {
	speed = sanitizeSpeed(speed)
	d.post(func(p *pending) { p.speed = &speed })
}

func (d *Driver) post(apply func(*pending)) {
	d.mu.Lock()
	apply(&d.pending)
	d.mu.Unlock()

	select {
	case d.notify <- struct{}{}:
	default:
		// Already signalled, loop picks up the latest values
	}
}

func (d *Driver) loop(ticker Ticker) {
	defer d.wg.Done()

	var ticks <-chan time.Time
	if ticker != nil {
		defer ticker.Stop()
		ticks = ticker.C()
	}

	select {
	case <-d.stopChan:
		return
	default:
	}

	// Requests posted before Start apply to the first frame
	d.applyPending()
	if d.opts.ReducedMotion {
		d.renderStatic()
	}

	for {
		select {
		case <-d.stopChan:
			return
		default:
		}

		select {
		case <-d.stopChan:
			return

		case <-d.notify:
			if d.applyPending() && d.opts.ReducedMotion {
				d.renderStatic()
			}

		case <-ticks:
			d.tick()
		}
	}
}

// applyPending moves host requests into loop-owned state, reporting whether anything changed
func (d *Driver) applyPending() bool {
	d.mu.Lock()
	p := d.pending
	d.pending = pending{}
	d.mu.Unlock()

	changed := false
	if p.size != nil && (p.size[0] != d.cols || p.size[1] != d.rows) {
		d.cols, d.rows = p.size[0], p.size[1]
		changed = true
	}
	if p.kind != nil && *p.kind != d.kind {
		d.kind = *p.kind
		changed = true
	}
	if p.speed != nil && *p.speed != d.speed {
		d.speed = *p.speed
	}
	return changed
}

func (d *Driver) tick() {
	d.applyPending()
	d.angles = Advance(d.angles, d.speed)
	d.renderFrame(false)
}

func (d *Driver) renderStatic() {
	d.angles = shape.StaticAngles(d.kind)
	d.renderFrame(true)
}

func (d *Driver) renderFrame(static bool) {
	d.dispatch.Render(d.kind, d.grid, d.cols, d.rows, d.angles)
	d.seq++

	d.out.Publish(Frame{
		Text:   d.grid.String(),
		Lines:  d.grid.Lines(),
		Cols:   d.grid.Cols(),
		Rows:   d.grid.Rows(),
		Shape:  d.kind,
		Angles: d.angles,
		Speed:  d.speed,
		Static: static,
		Seq:    d.seq,
	})
	d.frames.Add(1)
}

func sanitizeSpeed(speed float64) float64 {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return 1
	}
	return speed
}

// RenderOnce renders a single frame synchronously without a loop
// Used by the plain-text output mode
func RenderOnce(k shape.Kind, cols, rows int, at shape.Angles) Frame {
	g := render.NewGrid(cols, rows)
	shape.NewDispatcher().Render(k, g, cols, rows, at)
	return Frame{
		Text:   g.String(),
		Lines:  g.Lines(),
		Cols:   g.Cols(),
		Rows:   g.Rows(),
		Shape:  k,
		Angles: at,
	}
}
