package domain

import (
	m "minbool.dev/pkg/minbool/internal/model"
)

// grayCodes returns the n-bit Gray code sequence as integers.
func grayCodes(bits int) []int {
	size := 1 << bits
	out := make([]int, size)

	for i := 0; i < size; i++ {
		out[i] = i ^ (i >> 1)
	}

	return out
}

// BuildKarnaughMap lays a truth table out as a Gray-code ordered map. The
// high-order half of the variables labels the rows, the low-order half the
// columns. When a minimization result is supplied, each selected implicant
// is mapped onto the cells it covers, which is what the display layer draws
// as groups. This is a presentation aid; the minimizer itself never
// consults it.
func BuildKarnaughMap(table *m.TruthTable, minimized *m.MinimizeResult) (*m.KarnaughMap, error) {
	n := len(table.Variables)
	if n > m.MaxKarnaughVariables {
		return nil, &m.TooManyVariablesError{
			Operation: "karnaugh map",
			Count:     n,
			Limit:     m.MaxKarnaughVariables,
		}
	}

	if n == 0 {
		return nil, &m.TooManyVariablesError{Operation: "karnaugh map", Count: 0, Limit: m.MaxKarnaughVariables}
	}

	rowBits := n / 2
	colBits := n - rowBits

	rowCodes := grayCodes(rowBits)
	colCodes := grayCodes(colBits)

	km := &m.KarnaughMap{
		RowVariables: table.Variables[:rowBits],
		ColVariables: table.Variables[rowBits:],
		RowLabels:    make([]string, len(rowCodes)),
		ColLabels:    make([]string, len(colCodes)),
		Cells:        make([][]bool, len(rowCodes)),
	}

	for r, code := range rowCodes {
		km.RowLabels[r] = bitPattern(code, rowBits)
	}

	for c, code := range colCodes {
		km.ColLabels[c] = bitPattern(code, colBits)
	}

	// cellOf maps a minterm index to its map coordinates.
	coords := make(map[int][2]int, len(table.Rows))

	for r, rowCode := range rowCodes {
		km.Cells[r] = make([]bool, len(colCodes))

		for c, colCode := range colCodes {
			minterm := rowCode<<colBits | colCode
			km.Cells[r][c] = table.Rows[minterm].Output
			coords[minterm] = [2]int{r, c}
		}
	}

	if minimized == nil {
		return km, nil
	}

	for _, im := range minimized.Essential {
		group := m.KarnaughGroup{Term: im.Term(minimized.Variables)}
		for _, minterm := range im.Minterms {
			if cell, ok := coords[minterm]; ok {
				group.Cells = append(group.Cells, cell)
			}
		}

		km.Groups = append(km.Groups, group)
	}

	return km, nil
}
