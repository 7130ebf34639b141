package model

// Hard caps on variable counts. Truth-table generation is O(2^n) and
// minimization is worse than polynomial in the number of minterms, so both
// reject oversized inputs instead of attempting the computation.
const (
	MaxTableVariables    = 8
	MaxMinimizeVariables = 6
	MaxKarnaughVariables = 4
)

// Binding maps a normalized variable name to its boolean value.
// Bindings are ephemeral, constructed per evaluation.
type Binding map[string]bool

// Row is one line of a truth table.
type Row struct {
	Inputs  Binding
	Output  bool
	Minterm int
	Maxterm int
}

// TruthTable is the exhaustive input/output table of an expression.
//
// Variables is lexicographically sorted and fixed across the table;
// Variables[0] is the most significant bit of every minterm index. Rows are
// ordered by strictly increasing minterm, so Rows[i].Minterm == i; the
// minimizer relies on this ordering. The table is immutable once generated.
type TruthTable struct {
	Variables []string
	Rows      []Row
}

// Minterms returns the indices of rows whose output is true.
func (t *TruthTable) Minterms() []int {
	var out []int
	for _, row := range t.Rows {
		if row.Output {
			out = append(out, row.Minterm)
		}
	}

	return out
}

// Maxterms returns the maxterm indices of rows whose output is false.
func (t *TruthTable) Maxterms() []int {
	var out []int
	for _, row := range t.Rows {
		if !row.Output {
			out = append(out, row.Maxterm)
		}
	}

	return out
}

// Constant reports whether the table describes a constant function and, if
// so, its value.
func (t *TruthTable) Constant() (value bool, ok bool) {
	if len(t.Rows) == 0 {
		return false, false
	}

	first := t.Rows[0].Output
	for _, row := range t.Rows[1:] {
		if row.Output != first {
			return false, false
		}
	}

	return first, true
}
