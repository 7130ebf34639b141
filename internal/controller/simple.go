package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "minbool.dev/pkg/minbool/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayAnalysis prints the truth table with minterm/maxterm columns,
// followed by the canonical forms.
func (s *SimpleUI) DisplayAnalysis(ctx context.Context, analysis *m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n\n", headingStyle.Render("Truth table for "+analysis.Expression))
	s.printf("%s\n", renderTruthTable(analysis.Table))

	s.printf("SOP: %s\n", analysis.CanonicalSOP)
	s.printf("POS: %s\n", analysis.CanonicalPOS)

	if value, ok := analysis.Table.Constant(); ok {
		s.printf("%s\n", dimStyle.Render(fmt.Sprintf("constant function: always %s", bitString(value))))
	}

	return nil
}

// DisplaySimplification prints the implicant chart and the minimized
// expression.
func (s *SimpleUI) DisplaySimplification(ctx context.Context, analysis *m.Analysis, stats m.SimplifyStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	minimized := analysis.Minimized
	if minimized == nil {
		s.printf("expression has %d variables; minimization supports at most %d\n",
			len(analysis.Variables), m.MaxMinimizeVariables)

		return nil
	}

	s.printf("%s\n\n", headingStyle.Render("Simplification of "+analysis.Expression))
	s.printf("%s\n", renderImplicants(minimized))

	if analysis.Karnaugh != nil {
		s.printf("%s\n%s\n", headingStyle.Render("Karnaugh map"), renderKarnaugh(analysis.Karnaugh))
	}

	if len(minimized.Uncovered) > 0 {
		s.printf("%s\n", badStyle.Render(fmt.Sprintf("uncovered minterms: %v", minimized.Uncovered)))
	}

	s.printf("Minimized: %s\n", okStyle.Render(minimized.Expression))
	s.printf("%s\n", dimStyle.Render(fmt.Sprintf(
		"%d minterms, %d prime / %d essential implicants, literals %d -> %d",
		stats.MintermCount, stats.PrimeCount, stats.EssentialCount,
		stats.CanonicalLiterals, stats.SimplifiedLiterals,
	)))

	return nil
}

// DisplayValidations prints one verdict per expression.
func (s *SimpleUI) DisplayValidations(ctx context.Context, verdicts []m.Validation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	invalid := 0

	for _, verdict := range verdicts {
		if verdict.Valid {
			s.printf("%s %s (%d variables)\n", okStyle.Render("ok"), verdict.Expression, verdict.VariableCount)
			continue
		}

		invalid++

		s.printf("%s %s: %s\n", badStyle.Render("invalid"), verdict.Expression, verdict.Err)
	}

	s.printf("\n%d expression(s), %d invalid\n", len(verdicts), invalid)

	return nil
}

// DisplayExamples prints the example catalog.
func (s *SimpleUI) DisplayExamples(ctx context.Context, examples []m.Example) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Name", "Expression", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, example := range examples {
		table.Append([]string{example.Name, example.Expression, example.Description})
	}

	table.Render()
	s.printf("%s", buf.String())

	return nil
}

// Explore falls back to the static rendering; the interactive viewer lives
// in the TUI.
func (s *SimpleUI) Explore(ctx context.Context, analysis *m.Analysis) error {
	return s.DisplayAnalysis(ctx, analysis)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderTruthTable(table *m.TruthTable) string {
	var buf bytes.Buffer

	tw := tablewriter.NewWriter(&buf)

	header := append([]string(nil), table.Variables...)
	header = append(header, "OUT", "MINTERM", "MAXTERM")
	tw.SetHeader(header)
	tw.SetBorder(false)
	tw.SetCenterSeparator("")

	for _, row := range table.Rows {
		record := make([]string, 0, len(header))
		for _, name := range table.Variables {
			record = append(record, bitString(row.Inputs[name]))
		}

		record = append(record,
			bitString(row.Output),
			strconv.Itoa(row.Minterm),
			strconv.Itoa(row.Maxterm),
		)
		tw.Append(record)
	}

	tw.Render()

	return buf.String()
}

func renderImplicants(minimized *m.MinimizeResult) string {
	var buf bytes.Buffer

	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader([]string{"Pattern", "Term", "Minterms", "Essential"})
	tw.SetBorder(false)
	tw.SetCenterSeparator("")

	essential := make(map[string]bool, len(minimized.Essential))
	for _, im := range minimized.Essential {
		essential[im.Pattern] = true
	}

	for _, im := range minimized.Prime {
		mark := ""
		if essential[im.Pattern] {
			mark = "*"
		}

		tw.Append([]string{
			im.Pattern,
			im.Term(minimized.Variables),
			fmt.Sprint(im.Minterms),
			mark,
		})
	}

	tw.Render()

	return buf.String()
}

func renderKarnaugh(km *m.KarnaughMap) string {
	var buf bytes.Buffer

	tw := tablewriter.NewWriter(&buf)

	corner := strings.Join(km.RowVariables, "") + "\\" + strings.Join(km.ColVariables, "")
	tw.SetHeader(append([]string{corner}, km.ColLabels...))
	tw.SetBorder(false)
	tw.SetCenterSeparator("")

	for r, cells := range km.Cells {
		record := make([]string, 0, len(cells)+1)
		record = append(record, km.RowLabels[r])

		for _, cell := range cells {
			record = append(record, bitString(cell))
		}

		tw.Append(record)
	}

	tw.Render()

	for _, group := range km.Groups {
		fmt.Fprintf(&buf, "group %s covers %d cell(s)\n", group.Term, len(group.Cells))
	}

	return buf.String()
}

func bitString(value bool) string {
	if value {
		return "1"
	}

	return "0"
}
