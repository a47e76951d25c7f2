package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/dochazka/internal/config"
	"github.com/alexanderramin/dochazka/internal/db"
	"github.com/alexanderramin/dochazka/internal/repository"
	"github.com/alexanderramin/dochazka/internal/service"
)

// App holds the tracker and the settings commands run with. Tests set
// Tracker directly; otherwise it is built from Config on first use.
type App struct {
	Config  config.Config
	Tracker *service.Tracker
	// Changes receives a value after tracker state changes; the TUI
	// re-renders on it. May be nil.
	Changes <-chan struct{}

	Stderr        io.Writer
	IsInteractive func() bool

	closers []func()
}

func (a *App) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}

// ensureTracker wires the store, observer and tracker from Config.
func (a *App) ensureTracker() error {
	if a.Tracker != nil {
		return nil
	}

	var store service.ShiftStore = service.NewMemoryShiftStore()
	if a.Config.Durable() {
		database, err := db.OpenDB(a.Config.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		a.closers = append(a.closers, func() { database.Close() })
		store = service.NewSQLiteShiftStore(
			repository.NewSQLiteShiftRepo(database),
			db.NewSQLiteUnitOfWork(database),
		)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if a.Config.LogEvents {
		observer = service.NewLogUseCaseObserver(a.stderr())
	}

	changes := make(chan struct{}, 1)
	a.Tracker = service.NewTracker(
		service.WithShiftStore(store),
		service.WithObserver(observer),
		service.WithTickInterval(a.Config.TickInterval),
		service.WithOnChange(func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		}),
	)
	a.Changes = changes
	// The timer must stop before the database closes.
	a.closers = append([]func(){a.Tracker.Close}, a.closers...)
	return nil
}

// Close releases what ensureTracker opened.
func (a *App) Close() {
	for _, c := range a.closers {
		c()
	}
	a.closers = nil
}
