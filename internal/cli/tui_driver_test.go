package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/dochazka/internal/domain"
	"github.com/alexanderramin/dochazka/internal/service"
	"github.com/alexanderramin/dochazka/internal/teatest"
	"github.com/alexanderramin/dochazka/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// testApp returns an App whose tracker only ticks when the test calls
// Tick, backed by the in-memory store.
func testApp(t *testing.T, opts ...service.TrackerOption) *App {
	t.Helper()
	tickers := testutil.NewManualTickers()
	opts = append([]service.TrackerOption{service.WithTickerFactory(tickers.Factory())}, opts...)
	tr := service.NewTracker(opts...)
	t.Cleanup(tr.Close)
	return &App{Tracker: tr}
}

// seedShifts saves each shift through the tracker, in order.
func seedShifts(t *testing.T, app *App, shifts ...domain.Shift) {
	t.Helper()
	ctx := context.Background()
	for _, s := range shifts {
		app.Tracker.EditShift(s)
		app.Tracker.StopShift()
		require.NoError(t, app.Tracker.SaveShift(ctx))
	}
}

// TestDriver wraps teatest.Driver with access to trackerModel internals.
type TestDriver struct {
	*teatest.Driver
	app *App
}

func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	m := newTrackerModel(app.Tracker, app.Changes)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()
	return &TestDriver{Driver: d, app: app}
}

func (d *TestDriver) model() *trackerModel {
	return d.Model.(*trackerModel)
}

// Ticks advances the open shift as the timer would.
func (d *TestDriver) Ticks(n int) {
	for i := 0; i < n; i++ {
		d.app.Tracker.Tick()
	}
	d.Send(trackerChangedMsg{})
}

func (d *TestDriver) OpenShift() (domain.Shift, bool) {
	return d.app.Tracker.OpenShift()
}

func (d *TestDriver) Shifts() []domain.Shift {
	d.T.Helper()
	shifts, err := d.app.Tracker.Shifts(context.Background())
	require.NoError(d.T, err)
	return shifts
}

// ReplaceFormInput clears the focused form input and types s.
func (d *TestDriver) ReplaceFormInput(s string) {
	d.T.Helper()
	for i := 0; i < 20; i++ {
		d.Press(tea.KeyBackspace)
	}
	d.Type(s)
}
