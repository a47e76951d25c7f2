package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive shift tracker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTracker(app)
		},
	}
}

func runTracker(app *App) error {
	if app.Config.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", app.Config.TickInterval)
	}
	if err := app.ensureTracker(); err != nil {
		return err
	}
	defer app.Close()

	m := newTrackerModel(app.Tracker, app.Changes)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running tracker: %w", err)
	}
	return nil
}
