package cmd

import (
	"context"

	"github.com/spf13/cobra"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <report.yaml>",
		Short: "Show a saved run report",
		Long:  "Render a report written with --report as a summary table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(context.Background(), m.Path(args[0]))
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
