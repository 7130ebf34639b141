// Package adapter provides the outward-facing surfaces of the pipeline:
// truth-table file exports, the embedded example catalog and the HTTP API.
package adapter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "minbool.dev/pkg/minbool/internal/model"
)

// TableExporter renders truth tables into the supported file formats.
type TableExporter interface {
	Export(table *m.TruthTable, format m.ExportFormat, w io.Writer) error
	ExportFile(table *m.TruthTable, format m.ExportFormat, path string) error
}

type tableExporter struct{}

// NewTableExporter creates the default TableExporter.
func NewTableExporter() TableExporter {
	return &tableExporter{}
}

// Export writes the table to w in the requested format.
func (e *tableExporter) Export(table *m.TruthTable, format m.ExportFormat, w io.Writer) error {
	switch format {
	case m.FormatCSV:
		return writeCSV(table, w)
	case m.FormatLaTeX:
		return writeLaTeX(table, w)
	case m.FormatText:
		return writeText(table, w)
	}

	return fmt.Errorf("unsupported export format %q", format)
}

// ExportFile writes the table to a file, creating or truncating it.
func (e *tableExporter) ExportFile(table *m.TruthTable, format m.ExportFormat, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := e.Export(table, format, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func bit(value bool) string {
	if value {
		return "1"
	}

	return "0"
}

func tableHeader(table *m.TruthTable) []string {
	header := append([]string(nil), table.Variables...)

	return append(header, "OUT", "MINTERM", "MAXTERM")
}

func tableRecord(table *m.TruthTable, row m.Row) []string {
	record := make([]string, 0, len(table.Variables)+3)
	for _, name := range table.Variables {
		record = append(record, bit(row.Inputs[name]))
	}

	return append(record, bit(row.Output), fmt.Sprint(row.Minterm), fmt.Sprint(row.Maxterm))
}

func writeCSV(table *m.TruthTable, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(tableHeader(table)); err != nil {
		return err
	}

	for _, row := range table.Rows {
		if err := cw.Write(tableRecord(table, row)); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func writeLaTeX(table *m.TruthTable, w io.Writer) error {
	cols := strings.Repeat("c", len(table.Variables)) + "|ccc"

	if _, err := fmt.Fprintf(w, "\\begin{tabular}{%s}\n", cols); err != nil {
		return err
	}

	header := make([]string, 0, len(table.Variables)+3)
	for _, name := range table.Variables {
		header = append(header, "$"+name+"$")
	}

	header = append(header, "OUT", "minterm", "maxterm")

	if _, err := fmt.Fprintf(w, "%s \\\\\n\\hline\n", strings.Join(header, " & ")); err != nil {
		return err
	}

	for _, row := range table.Rows {
		if _, err := fmt.Fprintf(w, "%s \\\\\n", strings.Join(tableRecord(table, row), " & ")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\\end{tabular}\n")

	return err
}

func writeText(table *m.TruthTable, w io.Writer) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(tableHeader(table))
	tw.SetBorder(false)
	tw.SetCenterSeparator("")

	for _, row := range table.Rows {
		tw.Append(tableRecord(table, row))
	}

	tw.Render()

	return nil
}
