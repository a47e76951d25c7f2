package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/dochazka/internal/config"
	"github.com/alexanderramin/dochazka/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFormatCmd(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"125", "2 minut 5 sekund"},
		{"3661", "1 hodin 1 minut 1 sekund"},
		{"45", "45 sekund"},
		{"abc", "0 sekund"},
		{"-5", "-5 sekund"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, err := execute(t, &App{}, "format", tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestFormatCmd_RequiresArgument(t *testing.T) {
	_, err := execute(t, &App{}, "format")
	assert.Error(t, err)
}

func TestShiftsList_Empty(t *testing.T) {
	out, err := execute(t, testApp(t), "shifts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Žádné směny.")
	assert.Contains(t, out, "jen v paměti")
}

func TestShiftsList_RendersTable(t *testing.T) {
	app := testApp(t)
	seedShifts(t, app, domain.Shift{Name: "Ana", Seconds: 125}, domain.Shift{Name: "Petr", Seconds: 3661})

	out, err := execute(t, app, "shifts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Seznam směn")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "2 minut 5 sekund")
	assert.Contains(t, out, "Petr")
	assert.Contains(t, out, "1 hodin 1 minut 1 sekund")
	assert.Less(t, strings.Index(out, "Ana"), strings.Index(out, "Petr"))
}

func TestShiftsList_DurableStoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shifts.db")
	cfg := config.Config{DBPath: path, TickInterval: time.Second}

	first := &App{Config: cfg}
	require.NoError(t, first.ensureTracker())
	first.Tracker.StartShift()
	first.Tracker.Tick()
	first.Tracker.RenameOpenShift("Ana")
	first.Tracker.StopShift()
	require.NoError(t, first.Tracker.SaveShift(t.Context()))
	first.Close()

	out, err := execute(t, &App{Config: cfg}, "shifts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "1 sekund")
	assert.NotContains(t, out, "jen v paměti")
}

func TestShiftsList_DBFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flag.db")
	app := &App{Config: config.Config{TickInterval: time.Second}}

	out, err := execute(t, app, "--db", path, "shifts", "list")
	require.NoError(t, err)
	assert.Equal(t, path, app.Config.DBPath)
	assert.Contains(t, out, "Žádné směny.")
	assert.FileExists(t, path)
}

func TestRoot_NonInteractivePrintsHelp(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	out, err := execute(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Shift attendance tracker")
	assert.Contains(t, out, "format")
}

func TestRun_RejectsNonPositiveTick(t *testing.T) {
	app := &App{Config: config.Config{TickInterval: 0}}

	_, err := execute(t, app, "run")
	assert.Error(t, err)
}

func TestApp_LogEventsWritesToStderr(t *testing.T) {
	var stderr bytes.Buffer
	app := &App{
		Config: config.Config{TickInterval: time.Second, LogEvents: true},
		Stderr: &stderr,
	}
	require.NoError(t, app.ensureTracker())
	defer app.Close()

	app.Tracker.StartShift()
	app.Tracker.StopShift()

	assert.Contains(t, stderr.String(), "use_case=start_shift")
	assert.NotNil(t, app.Changes)
}
