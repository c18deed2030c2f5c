// Package indel computes the insert/delete edit distance between two code-point
// sequences. A substitution is not a primitive operation: replacing one code point
// costs one deletion plus one insertion.
package indel

// substitutionCost is the price of turning one code point into another.
const substitutionCost = 2

// Distance returns the minimum number of single code-point insertions and deletions
// that transform a into b.
func Distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Keep the row as short as possible; the metric is symmetric.
	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diag := row[0]
		row[0] = j
		bj := b[j-1]
		for i := 1; i <= len(a); i++ {
			up := row[i]

			cost := diag
			if a[i-1] != bj {
				cost += substitutionCost
			}
			if v := up + 1; v < cost {
				cost = v
			}
			if v := row[i-1] + 1; v < cost {
				cost = v
			}

			row[i] = cost
			diag = up
		}
	}

	return row[len(a)]
}

// Strings is a convenience wrapper comparing two strings by code point.
func Strings(a, b string) int {
	if a == b {
		return 0
	}
	return Distance([]rune(a), []rune(b))
}
