package cli

import (
	"github.com/alexanderramin/dochazka/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCmd creates the top-level "dochazka" command. Without a
// subcommand it opens the interactive tracker.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "dochazka",
		Short:         "Shift attendance tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return cmd.Help()
			}
			return runTracker(app)
		},
	}

	bindConfigFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newRunCmd(app),
		newFormatCmd(),
		newShiftsCmd(app),
	)

	return root
}

// bindConfigFlags lets flags override the environment-loaded config.
func bindConfigFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite file for saved shifts (empty keeps them in memory)")
	fs.BoolVar(&cfg.LogEvents, "log-events", cfg.LogEvents, "Log tracker events to stderr")
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Timer tick interval")
}
