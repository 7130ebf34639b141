package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkParallelFlag int
var checkFileFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [EXPRESSION...]",
		Short: "Validate expressions without evaluating them",
		Long: `Validate one or more expressions and report a verdict per expression.
Invalid expressions are reported but never fail the command.

With --file, expressions are read one per line; blank lines and lines
starting with # are skipped. File batches are validated concurrently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			expressions := args

			if checkFileFlag != "" {
				fromFile, err := readExpressionLines(checkFileFlag)
				if err != nil {
					return err
				}

				expressions = append(expressions, fromFile...)
			}

			if len(expressions) == 0 {
				return fmt.Errorf("no expressions given; pass them as arguments or via --%s", checkFileFlagName)
			}

			workers := viper.GetInt(checkParallelConfigKey)

			return workflow.Check(cmd.Context(), expressions, workers)
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&checkParallelFlag, checkParallelFlagName, "p", viper.GetInt(checkParallelConfigKey), "number of parallel validation workers")
	bindFlagToConfig(cmd.Flags().Lookup(checkParallelFlagName), checkParallelConfigKey)
	cmd.Flags().StringVarP(&checkFileFlag, checkFileFlagName, "f", "", "read expressions from a file, one per line")
}

// readExpressionLines reads one expression per line, skipping blanks and
// #-comments.
func readExpressionLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open expressions file: %w", err)
	}
	defer f.Close()

	var expressions []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		expressions = append(expressions, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read expressions file: %w", err)
	}

	return expressions, nil
}
