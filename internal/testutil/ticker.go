package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/dochazka/internal/timer"
)

// ManualTickers hands out tickers that only fire when Fire is called,
// making timer-driven code deterministic in tests.
type ManualTickers struct {
	mu      sync.Mutex
	tickers []*ManualTicker
}

// ManualTicker is a timer.Ticker driven by ManualTickers.Fire.
type ManualTicker struct {
	ch       chan time.Time
	mu       sync.Mutex
	stopped  bool
	interval time.Duration
}

func (t *ManualTicker) C() <-chan time.Time { return t.ch }

func (t *ManualTicker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

// Stopped reports whether the owner released the ticker.
func (t *ManualTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Interval returns the period the ticker was created with.
func (t *ManualTicker) Interval() time.Duration {
	return t.interval
}

// NewManualTickers returns an empty ticker source.
func NewManualTickers() *ManualTickers {
	return &ManualTickers{}
}

// Factory satisfies timer.TickerFactory.
func (m *ManualTickers) Factory() timer.TickerFactory {
	return func(d time.Duration) timer.Ticker {
		t := &ManualTicker{ch: make(chan time.Time), interval: d}
		m.mu.Lock()
		m.tickers = append(m.tickers, t)
		m.mu.Unlock()
		return t
	}
}

// Created returns how many tickers have been handed out.
func (m *ManualTickers) Created() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

// Latest returns the most recently created ticker, or nil.
func (m *ManualTickers) Latest() *ManualTicker {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.tickers) == 0 {
		return nil
	}
	return m.tickers[len(m.tickers)-1]
}

// Fire delivers one tick to the latest ticker. It returns false when no
// receiver picked the tick up within a second.
func (m *ManualTickers) Fire() bool {
	t := m.Latest()
	if t == nil || t.Stopped() {
		return false
	}
	select {
	case t.ch <- time.Now():
		return true
	case <-time.After(time.Second):
		return false
	}
}
