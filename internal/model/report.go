package model

// Analysis is the full result of running one expression through the
// pipeline. Every request builds a fresh Analysis; nothing is persisted.
type Analysis struct {
	Expression string
	AST        Node
	Variables  []string
	Table      *TruthTable

	// Canonical forms derived from the table rows.
	CanonicalSOP string
	CanonicalPOS string

	// Minimized is nil when the variable count exceeds the minimization
	// cap; the rest of the analysis is still valid.
	Minimized *MinimizeResult

	// Karnaugh is nil when the variable count exceeds the map cap.
	Karnaugh *KarnaughMap
}

// Validation is the always-succeeding verdict on one expression.
type Validation struct {
	Expression    string
	Valid         bool
	Variables     []string
	VariableCount int
	Err           string
}

// SimplifyStats compares an expression against its minimized form.
type SimplifyStats struct {
	MintermCount       int
	PrimeCount         int
	EssentialCount     int
	CanonicalLiterals  int
	SimplifiedLiterals int
}

// Example is a named sample expression from the built-in catalog.
type Example struct {
	Name        string `yaml:"name" json:"name"`
	Expression  string `yaml:"expression" json:"expression"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ExportFormat selects a truth-table file rendering.
type ExportFormat string

// Supported export formats.
const (
	FormatCSV   ExportFormat = "csv"
	FormatLaTeX ExportFormat = "latex"
	FormatText  ExportFormat = "text"
)
