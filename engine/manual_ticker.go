package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// ManualTicker is a controllable Ticker for tests and single-step tools
// Fire blocks until the driver loop accepts the tick or the ticker is stopped
type ManualTicker struct {
	ch       chan time.Time
	stopChan chan struct{}
	stopOnce sync.Once
	created  atomic.Int32
	interval atomic.Int64
	now      time.Time
}

// NewManualTicker creates a ticker starting its fake clock at start
func NewManualTicker(start time.Time) *ManualTicker {
	return &ManualTicker{
		ch:       make(chan time.Time),
		stopChan: make(chan struct{}),
		now:      start,
	}
}

// Func returns a TickerFunc handing out this ticker and recording the request
func (m *ManualTicker) Func() TickerFunc {
	return func(interval time.Duration) Ticker {
		m.created.Add(1)
		m.interval.Store(int64(interval))
		return m
	}
}

// Created returns how many times the driver asked for a ticker
func (m *ManualTicker) Created() int {
	return int(m.created.Load())
}

// Interval returns the interval requested by the driver
func (m *ManualTicker) Interval() time.Duration {
	return time.Duration(m.interval.Load())
}

func (m *ManualTicker) C() <-chan time.Time {
	return m.ch
}

func (m *ManualTicker) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// Fire delivers one tick, reporting false if the ticker was stopped first
func (m *ManualTicker) Fire() bool {
	m.now = m.now.Add(m.Interval())
	select {
	case m.ch <- m.now:
		return true
	case <-m.stopChan:
		return false
	}
}

// TryFire delivers a tick only if the loop is waiting for one right now
func (m *ManualTicker) TryFire() bool {
	select {
	case m.ch <- m.now:
		return true
	default:
		return false
	}
}
