package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"minbool.dev/pkg/minbool/internal/adapter"
	"minbool.dev/pkg/minbool/internal/controller"
	m "minbool.dev/pkg/minbool/internal/model"
)

// Workflow ties the analyzer to the presentation and export adapters. Each
// method backs one CLI command.
type Workflow interface {
	ShowTable(ctx context.Context, expression string) error
	Simplify(ctx context.Context, expression string) error
	Check(ctx context.Context, expressions []string, workers int) error
	Export(ctx context.Context, expression string, format m.ExportFormat, path string, fallback io.Writer) error
	Explore(ctx context.Context, expression string) error
	ShowExamples(ctx context.Context) error
}

type workflow struct {
	controller.UI
	adapter.TableExporter
	adapter.ExampleCatalog
	Analyzer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	ui controller.UI,
	exporter adapter.TableExporter,
	catalog adapter.ExampleCatalog,
	analyzer Analyzer,
) Workflow {
	return &workflow{
		UI:             ui,
		TableExporter:  exporter,
		ExampleCatalog: catalog,
		Analyzer:       analyzer,
	}
}

// ShowTable analyzes the expression and displays its truth table.
func (w *workflow) ShowTable(ctx context.Context, expression string) error {
	analysis, err := w.Analyze(ctx, expression)
	if err != nil {
		return err
	}

	if err := w.DisplayAnalysis(ctx, analysis); err != nil {
		slog.Error("Failed to display analysis", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Simplify analyzes the expression and displays the minimization outcome.
func (w *workflow) Simplify(ctx context.Context, expression string) error {
	analysis, err := w.Analyze(ctx, expression)
	if err != nil {
		return err
	}

	stats := Stats(analysis)

	if err := w.DisplaySimplification(ctx, analysis, stats); err != nil {
		slog.Error("Failed to display simplification", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Check validates every expression and displays one verdict per line.
// Invalid expressions are reported, not returned as errors; an error only
// means the batch itself could not run.
func (w *workflow) Check(ctx context.Context, expressions []string, workers int) error {
	verdicts, err := w.ValidateBatch(ctx, expressions, workers)
	if err != nil {
		return err
	}

	if err := w.DisplayValidations(ctx, verdicts); err != nil {
		slog.Error("Failed to display validations", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Export writes the truth table to the given path, or to fallback when the
// path is empty.
func (w *workflow) Export(
	ctx context.Context,
	expression string,
	format m.ExportFormat,
	path string,
	fallback io.Writer,
) error {
	analysis, err := w.Analyze(ctx, expression)
	if err != nil {
		return err
	}

	if path == "" {
		return w.TableExporter.Export(analysis.Table, format, fallback)
	}

	if err := w.ExportFile(analysis.Table, format, path); err != nil {
		return err
	}

	slog.Info("Exported truth table", "expression", expression, "format", format, "path", path)

	return nil
}

// Explore analyzes the expression and opens the interactive viewer.
func (w *workflow) Explore(ctx context.Context, expression string) error {
	analysis, err := w.Analyze(ctx, expression)
	if err != nil {
		return err
	}

	return w.UI.Explore(ctx, analysis)
}

// ShowExamples displays the built-in expression catalog.
func (w *workflow) ShowExamples(ctx context.Context) error {
	examples, err := w.Examples()
	if err != nil {
		return err
	}

	return w.DisplayExamples(ctx, examples)
}
