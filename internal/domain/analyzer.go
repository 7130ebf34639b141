package domain

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	m "minbool.dev/pkg/minbool/internal/model"
)

// Analyzer runs expressions through the full pipeline. Every call is
// independent and safe to run concurrently with others; no state is shared
// between invocations.
type Analyzer interface {
	Analyze(ctx context.Context, expression string) (*m.Analysis, error)
	Validate(ctx context.Context, expression string) m.Validation
	ValidateBatch(ctx context.Context, expressions []string, workers int) ([]m.Validation, error)
}

type analyzer struct{}

// NewAnalyzer creates the default Analyzer.
func NewAnalyzer() Analyzer {
	return &analyzer{}
}

// Analyze lexes, parses, tabulates and, when the variable count permits,
// minimizes the expression. A variable count beyond the minimization cap
// leaves Minimized nil rather than failing the whole analysis; a count
// beyond the table cap fails with TooManyVariablesError.
func (a *analyzer) Analyze(ctx context.Context, expression string) (*m.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, variables, err := ParseExpression(expression)
	if err != nil {
		return nil, err
	}

	table, err := GenerateTable(root, variables)
	if err != nil {
		return nil, err
	}

	analysis := &m.Analysis{
		Expression:   expression,
		AST:          root,
		Variables:    variables,
		Table:        table,
		CanonicalSOP: CanonicalSOP(table),
		CanonicalPOS: CanonicalPOS(table),
	}

	if len(variables) <= m.MaxMinimizeVariables {
		minimized, err := MinimizeTable(table)
		if err != nil {
			return nil, err
		}

		analysis.Minimized = minimized
	}

	if n := len(variables); n >= 1 && n <= m.MaxKarnaughVariables {
		km, err := BuildKarnaughMap(table, analysis.Minimized)
		if err != nil {
			return nil, err
		}

		analysis.Karnaugh = km
	}

	slog.Debug("analyzed expression",
		"expression", expression,
		"variables", len(variables),
		"minimized", analysis.Minimized != nil,
	)

	return analysis, nil
}

// Validate never fails: lexical and syntax problems land in the verdict.
func (a *analyzer) Validate(_ context.Context, expression string) m.Validation {
	verdict := m.Validation{Expression: expression}

	_, variables, err := ParseExpression(expression)
	if err != nil {
		verdict.Err = err.Error()
		return verdict
	}

	verdict.Valid = true
	verdict.Variables = variables
	verdict.VariableCount = len(variables)

	return verdict
}

// ValidateBatch validates expressions concurrently with a bounded worker
// pool. Results keep the input order. The only error it can return is a
// cancelled context.
func (a *analyzer) ValidateBatch(ctx context.Context, expressions []string, workers int) ([]m.Validation, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]m.Validation, len(expressions))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, expression := range expressions {
		i, expression := i, expression
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = a.Validate(groupCtx, expression)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Stats summarizes the effect of minimization for an analysis. The
// canonical literal count is what the unminimized Sum-of-Products form
// would spend (every variable in every minterm).
func Stats(analysis *m.Analysis) m.SimplifyStats {
	stats := m.SimplifyStats{}

	if analysis.Table != nil {
		minterms := analysis.Table.Minterms()
		stats.MintermCount = len(minterms)
		stats.CanonicalLiterals = len(minterms) * len(analysis.Table.Variables)
	}

	if analysis.Minimized != nil {
		stats.PrimeCount = len(analysis.Minimized.Prime)
		stats.EssentialCount = len(analysis.Minimized.Essential)

		for _, im := range analysis.Minimized.Essential {
			stats.SimplifiedLiterals += im.Literals()
		}
	}

	return stats
}

// IsInputError reports whether err stems from the expression itself (as
// opposed to an internal failure), which callers map to a user-facing
// message or a 400 response.
func IsInputError(err error) bool {
	var lexErr *m.LexicalError
	var synErr *m.SyntaxError
	var varErr *m.TooManyVariablesError

	return errors.As(err, &lexErr) || errors.As(err, &synErr) || errors.As(err, &varErr)
}
