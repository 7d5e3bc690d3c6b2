package engine

import "time"

// Ticker delivers frame callbacks; one pending tick at a time
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every interval
type TickerFunc func(interval time.Duration) Ticker

// timeTicker adapts time.Ticker
type timeTicker struct {
	t *time.Ticker
}

// NewTimeTicker returns a wall-clock Ticker
func NewTimeTicker(interval time.Duration) Ticker {
	return &timeTicker{t: time.NewTicker(interval)}
}

func (t *timeTicker) C() <-chan time.Time {
	return t.t.C
}

func (t *timeTicker) Stop() {
	t.t.Stop()
}
