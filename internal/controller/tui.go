package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "minbool.dev/pkg/minbool/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. The Display
// methods print a static rendering; Explore starts a scrollable viewer when
// the table does not fit on screen.
type TUI struct {
	output io.Writer
	simple *SimpleUI
}

// NewTUI creates a new TUI. Non-interactive output goes through the given
// SimpleUI so both front ends render tables identically.
func NewTUI(output io.Writer, simple *SimpleUI) *TUI {
	return &TUI{output: output, simple: simple}
}

func (t *TUI) DisplayAnalysis(ctx context.Context, analysis *m.Analysis) error {
	return t.simple.DisplayAnalysis(ctx, analysis)
}

func (t *TUI) DisplaySimplification(ctx context.Context, analysis *m.Analysis, stats m.SimplifyStats) error {
	return t.simple.DisplaySimplification(ctx, analysis, stats)
}

func (t *TUI) DisplayValidations(ctx context.Context, verdicts []m.Validation) error {
	return t.simple.DisplayValidations(ctx, verdicts)
}

func (t *TUI) DisplayExamples(ctx context.Context, examples []m.Example) error {
	return t.simple.DisplayExamples(ctx, examples)
}

// Explore shows the truth table in a scrollable viewer.
func (t *TUI) Explore(ctx context.Context, analysis *m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newExplorerModel(analysis)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	// If the table is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// explorerModel represents the Bubble Tea model for browsing a truth table.
type explorerModel struct {
	analysis *m.Analysis
	lines    []string
	viewport viewport.Model
	height   int
	width    int
	ready    bool
	quitting bool
}

func newExplorerModel(analysis *m.Analysis) explorerModel {
	return explorerModel{
		analysis: analysis,
		lines:    explorerLines(analysis),
	}
}

// explorerLines renders one line per truth-table row plus a column header.
func explorerLines(analysis *m.Analysis) []string {
	table := analysis.Table
	lines := make([]string, 0, len(table.Rows)+1)

	var header strings.Builder
	for _, name := range table.Variables {
		fmt.Fprintf(&header, "%3s", name)
	}

	header.WriteString("  OUT  MINTERM  MAXTERM")
	lines = append(lines, headingStyle.Render(header.String()))

	for _, row := range table.Rows {
		var b strings.Builder
		for _, name := range table.Variables {
			fmt.Fprintf(&b, "%3s", bitString(row.Inputs[name]))
		}

		fmt.Fprintf(&b, "  %3s", bitString(row.Output))

		if row.Output {
			fmt.Fprintf(&b, "  %7d  %7s", row.Minterm, "")
		} else {
			fmt.Fprintf(&b, "  %7s  %7d", "", row.Maxterm)
		}

		line := b.String()
		if !row.Output {
			line = dimStyle.Render(line)
		}

		lines = append(lines, line)
	}

	return lines
}

func (em explorerModel) Init() tea.Cmd {
	return nil
}

func (em explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return em.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return em.handleKeyPress(msg)
	}

	return em, nil
}

func (em explorerModel) resize(width, height int) explorerModel {
	em.width = width
	em.height = height

	vp := viewport.New(width, em.viewportHeight())
	vp.SetContent(strings.Join(em.lines, "\n"))

	if em.ready {
		vp.YOffset = em.viewport.YOffset
	}

	em.viewport = vp
	em.ready = true

	return em
}

func (em explorerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // We only handle specific navigation keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		em.quitting = true
		return em, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		em.quitting = true
		return em, tea.Quit

	case "down", "j":
		em.viewport.SetYOffset(em.viewport.YOffset + 1)
		return em, nil

	case "up", "k":
		em.viewport.SetYOffset(em.viewport.YOffset - 1)
		return em, nil

	case "g", "home":
		em.viewport.GotoTop()
		return em, nil

	case "G", "end":
		em.viewport.GotoBottom()
		return em, nil

	case "d", "pgdown":
		em.viewport.SetYOffset(em.viewport.YOffset + em.viewport.Height)
		return em, nil

	case "u", "pgup":
		em.viewport.SetYOffset(em.viewport.YOffset - em.viewport.Height)
		return em, nil
	}

	return em, nil
}

// viewportHeight reserves space for the title, canonical forms and footer.
func (em explorerModel) viewportHeight() int {
	// Reserved lines:
	// - Title + blank: 2 lines
	// - SOP + POS + blank: 3 lines
	// - Footer (help): 2 lines
	reserved := 7

	available := em.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// needsPagination returns true if the table is too large to fit on screen.
func (em explorerModel) needsPagination() bool {
	if len(em.lines) == 0 || em.height == 0 {
		return false
	}

	return len(em.lines) > em.viewportHeight()
}

func (em explorerModel) View() string {
	var b strings.Builder

	em.renderHeader(&b)

	if em.ready {
		b.WriteString(em.viewport.View())
	} else {
		b.WriteString(strings.Join(em.lines, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
	b.WriteString("\n")

	return b.String()
}

// staticView renders the whole table without the viewport, for output that
// fits on screen or is not a terminal.
func (em explorerModel) staticView() string {
	var b strings.Builder

	em.renderHeader(&b)
	b.WriteString(strings.Join(em.lines, "\n"))
	b.WriteString("\n")

	return b.String()
}

func (em explorerModel) renderHeader(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n\n", headingStyle.Render("  Truth table for "+em.analysis.Expression))
	fmt.Fprintf(b, "  SOP: %s\n", em.analysis.CanonicalSOP)
	fmt.Fprintf(b, "  POS: %s\n\n", em.analysis.CanonicalPOS)
}
