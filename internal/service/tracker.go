package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/alexanderramin/dochazka/internal/domain"
	"github.com/alexanderramin/dochazka/internal/timer"
)

// Snapshot is a read-only view of the tracker state.
type Snapshot struct {
	Open    *domain.Shift
	Running bool
	Shifts  []domain.Shift
}

// TrackerOption configures a Tracker.
type TrackerOption func(*trackerConfig)

type trackerConfig struct {
	store     ShiftStore
	observer  UseCaseObserver
	interval  time.Duration
	newTicker timer.TickerFactory
	onChange  func()
}

// WithShiftStore sets where saved shifts go. Defaults to a MemoryShiftStore.
func WithShiftStore(s ShiftStore) TrackerOption {
	return func(c *trackerConfig) { c.store = s }
}

func WithObserver(o UseCaseObserver) TrackerOption {
	return func(c *trackerConfig) { c.observer = o }
}

func WithTickInterval(d time.Duration) TrackerOption {
	return func(c *trackerConfig) { c.interval = d }
}

func WithTickerFactory(f timer.TickerFactory) TrackerOption {
	return func(c *trackerConfig) { c.newTicker = f }
}

// WithOnChange registers fn to run after every state change, ticks
// included. fn runs on the ticking goroutine for ticks, so it must not
// block or call back into the Tracker.
func WithOnChange(fn func()) TrackerOption {
	return func(c *trackerConfig) { c.onChange = fn }
}

// Tracker is the shift tracker: the open-shift session, the timer engine
// that advances it, and the store it is saved into.
//
// Commands are serialized by opMu. Session state is guarded by mu, which
// the tick path also takes; the engine is always started and stopped
// with mu released so a tick waiting on mu cannot block Stop.
type Tracker struct {
	store    ShiftStore
	observer UseCaseObserver
	engine   *timer.Engine
	onChange func()

	opMu sync.Mutex

	mu      sync.Mutex
	open    *domain.Shift
	running bool
}

// NewTracker creates an idle tracker with no open shift. Call Close when
// done to release the timer.
func NewTracker(opts ...TrackerOption) *Tracker {
	cfg := trackerConfig{interval: timer.DefaultInterval}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.store == nil {
		cfg.store = NewMemoryShiftStore()
	}
	if cfg.observer == nil {
		cfg.observer = NoopUseCaseObserver{}
	}
	if cfg.onChange == nil {
		cfg.onChange = func() {}
	}

	t := &Tracker{
		store:    cfg.store,
		observer: cfg.observer,
		onChange: cfg.onChange,
	}
	var engineOpts []timer.Option
	if cfg.newTicker != nil {
		engineOpts = append(engineOpts, timer.WithTickerFactory(cfg.newTicker))
	}
	t.engine = timer.New(cfg.interval, t.Tick, engineOpts...)
	return t
}

// StartShift opens a fresh, empty shift and starts timing it. Any unsaved
// open shift is discarded.
func (t *Tracker) StartShift() {
	t.opMu.Lock()
	defer t.opMu.Unlock()
	started := time.Now()

	t.openAndRun(domain.NewShift())
	t.observe(context.Background(), "start_shift", started, nil, nil)
}

// EditShift reopens a copy of s and starts timing it.
func (t *Tracker) EditShift(s domain.Shift) {
	t.opMu.Lock()
	defer t.opMu.Unlock()
	started := time.Now()

	t.openAndRun(s)
	t.observe(context.Background(), "edit_shift", started, nil, map[string]any{
		"name":    s.Name,
		"seconds": s.Seconds,
	})
}

// StopShift stops the timer. The open shift stays open for editing.
func (t *Tracker) StopShift() {
	t.opMu.Lock()
	defer t.opMu.Unlock()
	started := time.Now()

	t.mu.Lock()
	wasRunning := t.running
	t.running = false
	t.mu.Unlock()

	if !wasRunning {
		return
	}
	t.engine.Stop()
	t.changed()
	t.observe(context.Background(), "stop_shift", started, nil, nil)
}

// RenameOpenShift sets the open shift's name, running or not.
func (t *Tracker) RenameOpenShift(name string) {
	t.opMu.Lock()
	defer t.opMu.Unlock()

	t.mu.Lock()
	if t.open == nil {
		t.mu.Unlock()
		return
	}
	t.open.Name = name
	t.mu.Unlock()

	t.changed()
}

// SetOpenShiftTime raises the open shift's elapsed time to seconds and
// forces the timer back on. Edits that would not increase the time are
// dropped without changing anything.
func (t *Tracker) SetOpenShiftTime(seconds int) {
	t.opMu.Lock()
	defer t.opMu.Unlock()
	started := time.Now()

	t.mu.Lock()
	if t.open == nil || seconds <= t.open.Seconds {
		t.mu.Unlock()
		return
	}
	t.open.Seconds = seconds
	t.running = true
	t.mu.Unlock()

	t.engine.Start()
	t.changed()
	t.observe(context.Background(), "set_open_shift_time", started, nil, map[string]any{"seconds": seconds})
}

// AdjustShiftTime raises the saved shift at index to seconds when that is
// an increase, then reopens the entry and forces the timer on whether or
// not the edit applied.
func (t *Tracker) AdjustShiftTime(ctx context.Context, index, seconds int) (err error) {
	t.opMu.Lock()
	defer t.opMu.Unlock()
	started := time.Now()
	defer func() {
		t.observe(ctx, "adjust_shift_time", started, err, map[string]any{"index": index, "seconds": seconds})
	}()

	shifts, err := t.store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing shifts: %w", err)
	}
	if index < 0 || index >= len(shifts) {
		return fmt.Errorf("shift index %d out of range [0, %d)", index, len(shifts))
	}

	entry := shifts[index]
	if seconds > entry.Seconds {
		entry.Seconds = seconds
		if err := t.store.Merge(ctx, entry); err != nil {
			return fmt.Errorf("saving shift: %w", err)
		}
	}

	t.openAndRun(entry)
	return nil
}

// SaveShift merges the open shift into the store and closes the session.
// Callers are expected to gate it with CanSave; the timer is stopped here
// regardless so a cleared session never keeps ticking. On a store error
// the (stopped) shift stays open.
func (t *Tracker) SaveShift(ctx context.Context) (err error) {
	t.opMu.Lock()
	defer t.opMu.Unlock()
	started := time.Now()

	t.mu.Lock()
	if t.open == nil {
		t.mu.Unlock()
		return nil
	}
	wasRunning := t.running
	t.running = false
	t.mu.Unlock()

	if wasRunning {
		t.engine.Stop()
	}

	t.mu.Lock()
	shift := *t.open
	t.mu.Unlock()

	defer func() {
		t.observe(ctx, "save_shift", started, err, map[string]any{
			"name":    shift.Name,
			"seconds": shift.Seconds,
		})
	}()

	if err := t.store.Merge(ctx, shift); err != nil {
		t.changed()
		return fmt.Errorf("saving shift: %w", err)
	}

	t.mu.Lock()
	t.open = nil
	t.mu.Unlock()

	t.changed()
	return nil
}

// Tick advances the open shift by one second while running. The engine
// calls it once per interval; calls while stopped are ignored.
func (t *Tracker) Tick() {
	t.mu.Lock()
	if !t.running || t.open == nil {
		t.mu.Unlock()
		return
	}
	if t.open.Seconds < math.MaxInt {
		t.open.Seconds++
	}
	t.mu.Unlock()

	t.changed()
}

// Close stops the timer for good. The tracker must not be used after.
func (t *Tracker) Close() {
	t.opMu.Lock()
	defer t.opMu.Unlock()

	t.mu.Lock()
	t.running = false
	t.mu.Unlock()

	t.engine.Close()
}

// OpenShift returns a copy of the open shift, if any.
func (t *Tracker) OpenShift() (domain.Shift, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.open == nil {
		return domain.Shift{}, false
	}
	return *t.open, true
}

// IsRunning reports whether the open shift is being timed.
func (t *Tracker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Shifts returns the saved shifts in list order.
func (t *Tracker) Shifts(ctx context.Context) ([]domain.Shift, error) {
	return t.store.List(ctx)
}

// Snapshot returns the open shift, running flag and saved list together.
func (t *Tracker) Snapshot(ctx context.Context) (Snapshot, error) {
	shifts, err := t.store.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{Shifts: shifts}
	if open, ok := t.OpenShift(); ok {
		snap.Open = &open
	}
	snap.Running = t.IsRunning()
	return snap, nil
}

// CanStart reports whether a new shift may be started: nothing is open.
func (t *Tracker) CanStart() bool {
	_, open := t.OpenShift()
	return !open
}

// CanStop reports whether the timer can be stopped.
func (t *Tracker) CanStop() bool {
	return t.IsRunning()
}

// CanSave reports whether the open shift may be saved: it is stopped and
// has a name.
func (t *Tracker) CanSave() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open != nil && !t.running && t.open.Name != ""
}

// openAndRun replaces the session with s and restarts the timer. The
// previous run is stopped first, so no tick it delivered reaches s.
func (t *Tracker) openAndRun(s domain.Shift) {
	t.engine.Stop()
	s = s.Clamped()

	t.mu.Lock()
	t.open = &s
	t.running = true
	t.mu.Unlock()

	t.engine.Start()
	t.changed()
}

func (t *Tracker) changed() {
	t.onChange()
}

func (t *Tracker) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	t.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
