// Package timer provides the periodic tick source that advances an open
// shift. An Engine owns at most one ticking goroutine and tears it down
// on Stop or Close, so no tick can fire against a disposed owner.
package timer

import (
	"sync"
	"time"
)

// DefaultInterval is the tick period used for shift timing.
const DefaultInterval = time.Second

// State is the engine's run state.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Ticker is the subset of *time.Ticker the engine needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a Ticker for the given interval.
type TickerFactory func(d time.Duration) Ticker

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

// NewStdTicker wraps time.NewTicker.
func NewStdTicker(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

// Option configures an Engine.
type Option func(*Engine)

// WithTickerFactory replaces the real-time ticker, mostly for tests.
func WithTickerFactory(f TickerFactory) Option {
	return func(e *Engine) {
		if f != nil {
			e.newTicker = f
		}
	}
}

// Engine emits onTick once per interval while Running. Ticks are
// best-effort: drift is not compensated and missed ticks are not replayed.
type Engine struct {
	interval  time.Duration
	onTick    func()
	newTicker TickerFactory

	mu     sync.Mutex
	quit   chan struct{}
	done   chan struct{}
	closed bool
}

// New creates an idle Engine. A non-positive interval falls back to
// DefaultInterval.
func New(interval time.Duration, onTick func(), opts ...Option) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if onTick == nil {
		onTick = func() {}
	}
	e := &Engine{
		interval:  interval,
		onTick:    onTick,
		newTicker: NewStdTicker,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Interval returns the configured tick period.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// Start moves Idle to Running. It is a no-op when already Running or
// after Close.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.quit != nil {
		return
	}

	quit := make(chan struct{})
	done := make(chan struct{})
	ticker := e.newTicker(e.interval)
	e.quit, e.done = quit, done

	go e.loop(ticker, quit, done)
}

func (e *Engine) loop(ticker Ticker, quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C():
			// A stop request racing with a ready tick wins.
			select {
			case <-quit:
				return
			default:
			}
			e.onTick()
		}
	}
}

// Stop moves Running to Idle and waits for the ticking goroutine to exit.
// It is a no-op when Idle. onTick must not call Stop.
func (e *Engine) Stop() {
	e.mu.Lock()
	quit, done := e.quit, e.done
	e.quit, e.done = nil, nil
	e.mu.Unlock()

	if quit == nil {
		return
	}
	close(quit)
	<-done
}

// Close stops the engine and disables any later Start.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.Stop()
}

// State reports whether the engine is ticking.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.quit != nil {
		return Running
	}
	return Idle
}

// Running is shorthand for State() == Running.
func (e *Engine) Running() bool {
	return e.State() == Running
}
