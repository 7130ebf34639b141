// Package controller provides output adapters for displaying analysis
// results.
package controller

import (
	"context"

	m "minbool.dev/pkg/minbool/internal/model"
)

// UI defines how analysis results reach the user. Implementations can use
// different output methods (plain text, interactive TUI).
type UI interface {
	DisplayAnalysis(ctx context.Context, analysis *m.Analysis) error
	DisplaySimplification(ctx context.Context, analysis *m.Analysis, stats m.SimplifyStats) error
	DisplayValidations(ctx context.Context, verdicts []m.Validation) error
	DisplayExamples(ctx context.Context, examples []m.Example) error
	Explore(ctx context.Context, analysis *m.Analysis) error
}
