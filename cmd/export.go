package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "minbool.dev/pkg/minbool/internal/model"
)

var exportFormatFlag string
var exportOutputFlag string

// exportCmd represents the export command.
var exportCmd = newExportCmd()

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export EXPRESSION",
		Short: "Export a truth table to CSV, LaTeX or plain text",
		Long: `Derive the truth table for the expression and write it in the chosen
format. Without --output the table goes to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseExportFormat(viper.GetString(exportFormatConfigKey))
			if err != nil {
				return err
			}

			return workflow.Export(cmd.Context(), joinExpression(args), format, exportOutputFlag, cmd.OutOrStdout())
		},
	}

	configureExportFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func configureExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&exportFormatFlag, exportFormatFlagName, "f", viper.GetString(exportFormatConfigKey), "output format: csv, latex or text")
	bindFlagToConfig(cmd.Flags().Lookup(exportFormatFlagName), exportFormatConfigKey)
	cmd.Flags().StringVarP(&exportOutputFlag, exportOutputFlagName, "o", "", "write to a file instead of stdout")
}

func parseExportFormat(value string) (m.ExportFormat, error) {
	switch m.ExportFormat(value) {
	case m.FormatCSV:
		return m.FormatCSV, nil
	case m.FormatLaTeX:
		return m.FormatLaTeX, nil
	case m.FormatText:
		return m.FormatText, nil
	}

	return "", fmt.Errorf("unknown export format %q (want csv, latex or text)", value)
}
