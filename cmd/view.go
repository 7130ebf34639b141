package cmd

import (
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view EXPRESSION",
		Short: "Browse a truth table interactively",
		Long: `Open a scrollable viewer for the truth table of the expression. Tables
that fit on screen are printed directly.

Keys: j/k or arrows to scroll, g/G for top/bottom, q to quit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Explore(cmd.Context(), joinExpression(args))
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
