package cli

import (
	"fmt"

	"github.com/alexanderramin/dochazka/internal/cli/formatter"
	"github.com/alexanderramin/dochazka/internal/domain"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format SECONDS",
		Short: "Print a duration the way the shift list shows it",
		Args:  cobra.ExactArgs(1),
		// Negative input such as "-5" is a value here, not a flag.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShiftDuration(domain.ParseSeconds(args[0])))
			return err
		},
	}
}
