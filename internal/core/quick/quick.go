// Package quick approximates the edit-distance ratio from code point frequencies
// alone. It ignores order, so anagrams score as identical.
package quick

// Ratio returns 2*matches / (|a| + |b|) where matches is the size of the multiset
// intersection of the code points of a and b. Two empty sequences are identical.
func Ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}

	counts := make(map[rune]int, len(a))
	for _, r := range a {
		counts[r]++
	}

	matches := 0
	for _, r := range b {
		if counts[r] > 0 {
			counts[r]--
			matches++
		}
	}

	return 2 * float64(matches) / float64(total)
}

// Strings applies Ratio to two strings compared by code point.
func Strings(a, b string) float64 {
	return Ratio([]rune(a), []rune(b))
}
