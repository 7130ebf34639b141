package domain

import (
	"fmt"
	"sort"
	"strings"

	m "minbool.dev/pkg/minbool/internal/model"
)

// Minimize computes a minimal Sum-of-Products cover for the given minterms
// over numVars variables using the Quine-McCluskey algorithm: seed one
// implicant per minterm, repeatedly combine implicants whose patterns differ
// in exactly one non-dash position, collect everything that never combines
// as prime implicants, then select a cover (essential implicants first,
// greedy afterwards).
//
// The essential-then-greedy selection is a heuristic: when several
// implicants tie for most newly covered minterms the first one in pattern
// order wins, which is deterministic but not guaranteed globally minimal.
func Minimize(minterms []int, numVars int, variables []string) (*m.MinimizeResult, error) {
	if numVars > m.MaxMinimizeVariables {
		return nil, &m.TooManyVariablesError{
			Operation: "minimization",
			Count:     numVars,
			Limit:     m.MaxMinimizeVariables,
		}
	}

	if numVars < 0 || len(variables) < numVars {
		return nil, fmt.Errorf("minimize: %d variable names for %d variables", len(variables), numVars)
	}

	terms, err := normalizeMinterms(minterms, numVars)
	if err != nil {
		return nil, err
	}

	result := &m.MinimizeResult{Variables: append([]string(nil), variables[:numVars]...)}

	// Degenerate cases bypass the combination rounds entirely.
	if len(terms) == 0 {
		result.Expression = "0"
		return result, nil
	}

	if len(terms) == 1<<numVars {
		tautology := m.Implicant{
			Minterms: terms,
			Pattern:  strings.Repeat("-", numVars),
			Prime:    true,
		}
		result.Prime = []m.Implicant{tautology}
		result.Essential = []m.Implicant{tautology}
		result.Expression = "1"

		return result, nil
	}

	result.Prime = primeImplicants(terms, numVars)
	result.Essential, result.Uncovered = selectCover(result.Prime, terms)
	result.Expression = renderSOP(result.Essential, result.Variables)

	return result, nil
}

// MinimizeTable runs Minimize on the true rows of a truth table.
func MinimizeTable(table *m.TruthTable) (*m.MinimizeResult, error) {
	return Minimize(table.Minterms(), len(table.Variables), table.Variables)
}

func normalizeMinterms(minterms []int, numVars int) ([]int, error) {
	limit := 1 << numVars

	seen := make(map[int]bool, len(minterms))
	for _, term := range minterms {
		if term < 0 || term >= limit {
			return nil, fmt.Errorf("minimize: minterm %d out of range for %d variables", term, numVars)
		}

		seen[term] = true
	}

	out := make([]int, 0, len(seen))
	for term := range seen {
		out = append(out, term)
	}

	sort.Ints(out)

	return out, nil
}

// primeImplicants runs the combination rounds. Implicants are grouped by
// the number of '1' bits in their pattern; only adjacent groups can yield a
// combinable pair. Implicants used in at least one combination are not
// prime; survivors are. Rounds continue on the newly formed, de-duplicated
// implicants until a round produces nothing.
func primeImplicants(minterms []int, numVars int) []m.Implicant {
	current := make([]m.Implicant, 0, len(minterms))
	for _, term := range minterms {
		current = append(current, m.Implicant{
			Minterms: []int{term},
			Pattern:  bitPattern(term, numVars),
		})
	}

	var primes []m.Implicant

	primeSeen := make(map[string]bool)

	for len(current) > 0 {
		groups := make(map[int][]int)
		for i, im := range current {
			count := popcount(im.Pattern)
			groups[count] = append(groups[count], i)
		}

		used := make([]bool, len(current))
		nextSeen := make(map[string]bool)

		var next []m.Implicant

		for count := 0; count <= numVars; count++ {
			for _, i := range groups[count] {
				for _, j := range groups[count+1] {
					combined, ok := combine(current[i], current[j])
					if !ok {
						continue
					}

					used[i] = true
					used[j] = true

					if !nextSeen[combined.Pattern] {
						nextSeen[combined.Pattern] = true
						next = append(next, combined)
					}
				}
			}
		}

		for i, im := range current {
			if used[i] || primeSeen[im.Pattern] {
				continue
			}

			primeSeen[im.Pattern] = true
			im.Prime = true
			primes = append(primes, im)
		}

		current = next
	}

	// Pattern order keeps every later step deterministic.
	sort.Slice(primes, func(i, j int) bool { return primes[i].Pattern < primes[j].Pattern })

	return primes
}

// combine merges two implicants whose patterns differ in exactly one
// non-dash position and agree everywhere else; dash positions must align.
// The merged pattern carries a dash at the differing position and the
// merged minterm set is the union.
func combine(a, b m.Implicant) (m.Implicant, bool) {
	diff := -1

	for i := 0; i < len(a.Pattern); i++ {
		ca, cb := a.Pattern[i], b.Pattern[i]
		if ca == cb {
			continue
		}

		if ca == m.PatternDash || cb == m.PatternDash || diff >= 0 {
			return m.Implicant{}, false
		}

		diff = i
	}

	if diff < 0 {
		return m.Implicant{}, false
	}

	pattern := a.Pattern[:diff] + "-" + a.Pattern[diff+1:]

	return m.Implicant{Minterms: mergeSorted(a.Minterms, b.Minterms), Pattern: pattern}, true
}

// selectCover picks the cover from the prime implicants in two passes:
// essential implicants (the sole cover of some minterm) first, then greedy
// selection by most newly covered minterms. If implicants run out before
// minterms do, the leftovers are reported, not panicked over.
func selectCover(primes []m.Implicant, minterms []int) (selected []m.Implicant, uncovered []int) {
	covered := make(map[int]bool, len(minterms))
	taken := make([]bool, len(primes))

	take := func(idx int) {
		taken[idx] = true
		selected = append(selected, primes[idx])
		for _, term := range primes[idx].Minterms {
			covered[term] = true
		}
	}

	for _, term := range minterms {
		sole := -1

		for i, im := range primes {
			if !im.Covers(term) {
				continue
			}

			if sole >= 0 {
				sole = -1
				break
			}

			sole = i
		}

		if sole >= 0 && !taken[sole] && !covered[term] {
			take(sole)
		}
	}

	remaining := func() int {
		count := 0
		for _, term := range minterms {
			if !covered[term] {
				count++
			}
		}

		return count
	}

	for remaining() > 0 {
		best, bestCount := -1, 0

		for i, im := range primes {
			if taken[i] {
				continue
			}

			count := 0
			for _, term := range im.Minterms {
				if !covered[term] {
					count++
				}
			}

			if count > bestCount {
				best, bestCount = i, count
			}
		}

		if best < 0 {
			break
		}

		take(best)
	}

	for _, term := range minterms {
		if !covered[term] {
			uncovered = append(uncovered, term)
		}
	}

	return selected, uncovered
}

func renderSOP(selected []m.Implicant, variables []string) string {
	if len(selected) == 0 {
		return "0"
	}

	terms := make([]string, 0, len(selected))
	for _, im := range selected {
		terms = append(terms, im.Term(variables))
	}

	return strings.Join(terms, " + ")
}

func bitPattern(value, numVars int) string {
	b := make([]byte, numVars)
	for i := 0; i < numVars; i++ {
		if (value>>(numVars-1-i))&1 == 1 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}

	return string(b)
}

func popcount(pattern string) int {
	count := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '1' {
			count++
		}
	}

	return count
}

func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0

	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i] < b[j]):
			out = append(out, a[i])
			i++
		case i >= len(a) || b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
