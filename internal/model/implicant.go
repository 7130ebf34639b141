package model

import "strings"

// PatternDash marks a don't-care position in an implicant pattern.
const PatternDash = '-'

// Implicant is a product term over a fixed variable ordering.
//
// Pattern is a string over {0,1,-} whose length equals the variable count of
// the minimization run; position 0 corresponds to the most significant bit,
// i.e. the first variable. Minterms is ascending and de-duplicated.
type Implicant struct {
	Minterms []int
	Pattern  string
	Prime    bool
}

// Covers reports whether the implicant covers the given minterm: every
// non-dash pattern position must equal the corresponding bit of the
// minterm's binary expansion.
func (im Implicant) Covers(minterm int) bool {
	n := len(im.Pattern)
	for i := 0; i < n; i++ {
		c := im.Pattern[i]
		if c == PatternDash {
			continue
		}

		bit := (minterm >> (n - 1 - i)) & 1
		if (c == '1') != (bit == 1) {
			return false
		}
	}

	return true
}

// Literals counts the non-dash positions of the pattern.
func (im Implicant) Literals() int {
	count := 0
	for i := 0; i < len(im.Pattern); i++ {
		if im.Pattern[i] != PatternDash {
			count++
		}
	}

	return count
}

// Term renders the implicant as a product term: a '1' position becomes the
// bare variable name, a '0' position the name with a trailing negation
// mark, and dashes are omitted. An all-dash pattern renders as "1".
//
// Single-letter names concatenate ("AB'C"). As soon as any name is longer
// than one letter the factors are space separated, because "SEL0SEL1"
// would read back as a single variable.
func (im Implicant) Term(variables []string) string {
	factors := make([]string, 0, len(variables))
	juxtapose := true

	for i := 0; i < len(im.Pattern) && i < len(variables); i++ {
		if len([]rune(variables[i])) > 1 {
			juxtapose = false
		}

		switch im.Pattern[i] {
		case '1':
			factors = append(factors, variables[i])
		case '0':
			factors = append(factors, variables[i]+"'")
		}
	}

	if len(factors) == 0 {
		return "1"
	}

	if juxtapose {
		return strings.Join(factors, "")
	}

	return strings.Join(factors, " ")
}

// MinimizeResult is the outcome of a Quine-McCluskey run.
type MinimizeResult struct {
	Variables  []string
	Prime      []Implicant
	Essential  []Implicant
	Expression string

	// Uncovered lists minterms no prime implicant could cover. A non-empty
	// slice signals an internal inconsistency and is surfaced to the
	// caller rather than treated as a crash.
	Uncovered []int
}
