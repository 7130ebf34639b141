package domain

import (
	"strings"

	m "minbool.dev/pkg/minbool/internal/model"
)

// GenerateTable enumerates all 2^n input combinations of the given variable
// ordering and evaluates the expression for each. Bit j of row i (bit 0
// being the most significant) binds variables[j], so the minterm index of a
// row is simply i and rows come out in ascending minterm order.
//
// Rejects variable lists longer than the table cap.
func GenerateTable(node m.Node, variables []string) (*m.TruthTable, error) {
	n := len(variables)
	if n > m.MaxTableVariables {
		return nil, &m.TooManyVariablesError{
			Operation: "truth table generation",
			Count:     n,
			Limit:     m.MaxTableVariables,
		}
	}

	rowCount := 1 << n
	table := &m.TruthTable{
		Variables: append([]string(nil), variables...),
		Rows:      make([]m.Row, 0, rowCount),
	}

	for i := 0; i < rowCount; i++ {
		bindings := make(m.Binding, n)
		for j, name := range variables {
			bindings[name] = (i>>(n-1-j))&1 == 1
		}

		output, err := Evaluate(node, bindings)
		if err != nil {
			return nil, err
		}

		table.Rows = append(table.Rows, m.Row{
			Inputs:  bindings,
			Output:  output,
			Minterm: i,
			Maxterm: rowCount - 1 - i,
		})
	}

	return table, nil
}

// CanonicalSOP renders the canonical Sum-of-Products form straight from the
// table rows: one product term per minterm. Degenerate tables collapse to
// "0" (never true) or "1" (always true).
func CanonicalSOP(table *m.TruthTable) string {
	if value, ok := table.Constant(); ok {
		if value {
			return "1"
		}

		return "0"
	}

	// Factors concatenate only while every name is a single letter;
	// "SEL0SEL1" would read back as one variable.
	sep := ""

	for _, name := range table.Variables {
		if len([]rune(name)) > 1 {
			sep = " "
			break
		}
	}

	var terms []string

	for _, row := range table.Rows {
		if !row.Output {
			continue
		}

		factors := make([]string, 0, len(table.Variables))

		for _, name := range table.Variables {
			if row.Inputs[name] {
				factors = append(factors, name)
			} else {
				factors = append(factors, name+"'")
			}
		}

		terms = append(terms, strings.Join(factors, sep))
	}

	return strings.Join(terms, " + ")
}

// CanonicalPOS renders the canonical Product-of-Sums form: one sum term per
// maxterm, with each variable negated where the row binds it true.
func CanonicalPOS(table *m.TruthTable) string {
	if value, ok := table.Constant(); ok {
		if value {
			return "1"
		}

		return "0"
	}

	var b strings.Builder

	for _, row := range table.Rows {
		if row.Output {
			continue
		}

		parts := make([]string, 0, len(table.Variables))
		for _, name := range table.Variables {
			if row.Inputs[name] {
				parts = append(parts, name+"'")
			} else {
				parts = append(parts, name)
			}
		}

		b.WriteString("(" + strings.Join(parts, " + ") + ")")
	}

	return b.String()
}
