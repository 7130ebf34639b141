// Package cmd provides the root command and CLI setup for minbool.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"minbool.dev/pkg/minbool/internal/adapter"
	"minbool.dev/pkg/minbool/internal/controller"
	"minbool.dev/pkg/minbool/internal/domain"
)

var analyzer domain.Analyzer
var catalog adapter.ExampleCatalog
var exporter adapter.TableExporter
var ui controller.UI
var workflow domain.Workflow

// verboseFlag switches file logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location from config.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	analyzer = domain.NewAnalyzer()
	exporter = adapter.NewTableExporter()

	var err error

	catalog, err = adapter.NewExampleCatalog()
	cobra.CheckErr(err)

	ui = controller.NewTUI(os.Stdout, controller.NewSimpleUI(rootCmd))
	workflow = domain.NewWorkflow(ui, exporter, catalog, analyzer)
}

const expressionSyntaxHelp = `Expressions use named variables (A, B, SEL0, C_1, ...) and the constants 0/1:
  - operators: AND, OR, NOT, XOR, NAND, NOR, XNOR (or &, |, !, ~, ^, ')
  - postfix negation: A' is NOT A
  - implicit AND: AB means A AND B (a digit or underscore keeps a name whole)
  - precedence: NOT > AND/NAND > XOR/XNOR > OR/NOR, parentheses override`

const rootLongDescription = `Minbool analyzes Boolean algebra expressions: it derives truth tables,
canonical Sum-of-Products and Product-of-Sums forms, and minimal
expressions via the Quine-McCluskey method.

` + expressionSyntaxHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minbool",
		Short: "Boolean expression analyzer",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// joinExpression lets users skip quoting: `minbool table A AND B` works the
// same as `minbool table "A AND B"`.
func joinExpression(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
