package cmd

import (
	"github.com/spf13/cobra"
)

// tableCmd represents the table command.
var tableCmd = newTableCmd()

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table EXPRESSION",
		Short: "Print the truth table for an expression",
		Long: `Parse the expression and print its truth table with minterm and maxterm
columns, followed by the canonical Sum-of-Products and Product-of-Sums
forms.

` + expressionSyntaxHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.ShowTable(cmd.Context(), joinExpression(args))
		},
	}
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
