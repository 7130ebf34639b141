package domain

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "minbool.dev/pkg/minbool/internal/model"
)

func TestAnalyzer_Analyze(t *testing.T) {
	analyzer := NewAnalyzer()

	analysis, err := analyzer.Analyze(context.Background(), "A AND B OR C")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, analysis.Variables)
	assert.Len(t, analysis.Table.Rows, 8)
	assert.NotEmpty(t, analysis.CanonicalSOP)
	assert.NotEmpty(t, analysis.CanonicalPOS)
	require.NotNil(t, analysis.Minimized)
	assert.NotEmpty(t, analysis.Minimized.Expression)

	require.NotNil(t, analysis.Karnaugh)
	assert.Equal(t, []string{"A"}, analysis.Karnaugh.RowVariables)
	assert.Equal(t, []string{"B", "C"}, analysis.Karnaugh.ColVariables)
}

func TestAnalyzer_Analyze_SkipsMinimizationAboveCap(t *testing.T) {
	analyzer := NewAnalyzer()

	analysis, err := analyzer.Analyze(context.Background(), "A OR B OR C OR D OR E OR F OR G")
	require.NoError(t, err)

	assert.Len(t, analysis.Variables, 7)
	assert.Len(t, analysis.Table.Rows, 128)
	assert.Nil(t, analysis.Minimized)
	assert.Nil(t, analysis.Karnaugh)
}

func TestAnalyzer_Analyze_InputErrors(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		name  string
		input string
	}{
		{"lexical", "A # B"},
		{"syntax", "A AND"},
		{"table cap", "A OR B OR C OR D OR E OR F OR G OR H OR I"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzer.Analyze(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, IsInputError(err), "expected input error, got %v", err)
		})
	}
}

func TestAnalyzer_Validate(t *testing.T) {
	analyzer := NewAnalyzer()

	valid := analyzer.Validate(context.Background(), "A XOR B")
	assert.True(t, valid.Valid)
	assert.Equal(t, []string{"A", "B"}, valid.Variables)
	assert.Equal(t, 2, valid.VariableCount)
	assert.Empty(t, valid.Err)

	invalid := analyzer.Validate(context.Background(), "A AND")
	assert.False(t, invalid.Valid)
	assert.NotEmpty(t, invalid.Err)
	assert.Zero(t, invalid.VariableCount)
}

func TestAnalyzer_ValidateBatch(t *testing.T) {
	analyzer := NewAnalyzer()

	expressions := []string{"A AND B", "A AND", "NOT (A OR B)", "A ++ B"}

	results, err := analyzer.ValidateBatch(context.Background(), expressions, 4)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
	assert.True(t, results[2].Valid)
	assert.False(t, results[3].Valid)

	// Results keep input order regardless of worker scheduling.
	for i, result := range results {
		assert.Equal(t, expressions[i], result.Expression)
	}
}

func TestAnalyzer_ValidateBatch_Cancelled(t *testing.T) {
	analyzer := NewAnalyzer()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	expressions := make([]string, 64)
	for i := range expressions {
		expressions[i] = "A AND B"
	}

	_, err := analyzer.ValidateBatch(ctx, expressions, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStats(t *testing.T) {
	analyzer := NewAnalyzer()

	analysis, err := analyzer.Analyze(context.Background(), "A AND B OR A AND C")
	require.NoError(t, err)

	stats := Stats(analysis)
	assert.Equal(t, 3, stats.MintermCount)
	assert.Equal(t, 9, stats.CanonicalLiterals)
	assert.Equal(t, 2, stats.EssentialCount)
	assert.Equal(t, 4, stats.SimplifiedLiterals)
	assert.Less(t, stats.SimplifiedLiterals, stats.CanonicalLiterals)
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(&m.LexicalError{}))
	assert.True(t, IsInputError(&m.SyntaxError{}))
	assert.True(t, IsInputError(&m.TooManyVariablesError{}))
	assert.False(t, IsInputError(context.Canceled))
	assert.False(t, IsInputError(strings.NewReader("").UnreadRune()))
}
