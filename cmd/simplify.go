package cmd

import (
	"github.com/spf13/cobra"
)

// simplifyCmd represents the simplify command.
var simplifyCmd = newSimplifyCmd()

func newSimplifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify EXPRESSION",
		Short: "Minimize an expression via Quine-McCluskey",
		Long: `Parse the expression, derive its truth table and compute a minimal
Sum-of-Products form. Prints the prime implicant chart, the essential
implicants and literal-count statistics.

Minimization supports up to 6 variables; larger expressions still get a
truth table from the table command.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Simplify(cmd.Context(), joinExpression(args))
		},
	}
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
}
