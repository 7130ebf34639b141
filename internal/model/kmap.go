package model

// KarnaughGroup is the set of map cells one selected implicant covers,
// labelled with its rendered product term.
type KarnaughGroup struct {
	Term  string
	Cells [][2]int // row, column coordinates into KarnaughMap.Cells
}

// KarnaughMap is a Gray-code ordered view of a truth table, kept as a
// display-oriented alternative to the minimizer's tabular output.
// Cells[r][c] is the function output for the input combination encoded by
// RowLabels[r] (the high-order variables) and ColLabels[c] (the low-order
// ones).
type KarnaughMap struct {
	RowVariables []string
	ColVariables []string
	RowLabels    []string
	ColLabels    []string
	Cells        [][]bool
	Groups       []KarnaughGroup
}
