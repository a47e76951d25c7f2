package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/dochazka/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShiftsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shifts",
		Short: "Inspect saved shifts",
	}
	cmd.AddCommand(newShiftsListCmd(app))
	return cmd
}

func newShiftsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ensureTracker(); err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			if !app.Config.Durable() {
				fmt.Fprintln(out, formatter.Dim("Směny se drží jen v paměti; pro trvalé uložení nastavte --db."))
			}

			shifts, err := app.Tracker.Shifts(cmd.Context())
			if err != nil {
				return err
			}
			if len(shifts) == 0 {
				fmt.Fprintln(out, "Žádné směny.")
				return nil
			}

			headers := []string{"#", "JMÉNO", "ČAS"}
			rows := make([][]string, 0, len(shifts))
			for i, s := range shifts {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					s.Name,
					formatter.FormatShiftDuration(s.Seconds),
				})
			}
			fmt.Fprint(out, formatter.RenderBox("Seznam směn", formatter.RenderTable(headers, rows)))
			fmt.Fprintln(out)
			return nil
		},
	}
}
