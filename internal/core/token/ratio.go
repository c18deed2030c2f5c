package token

import "strings"

// Comparator scores two already preprocessed strings with a fraction in [0, 1].
type Comparator func(a, b string) float64

// SortRatio sorts the tokens of both inputs, rejoins them and compares the results.
func SortRatio(s1, s2 string, cmp Comparator) float64 {
	return cmp(SortedJoin(Tokenize(s1)), SortedJoin(Tokenize(s2)))
}

// SetRatio separates the shared vocabulary of the inputs from the tokens unique to
// each side, then returns the best comparison among
//
//	intersection          vs intersection+diff1
//	intersection          vs intersection+diff2
//	intersection+diff1    vs intersection+diff2
//
// Duplicated tokens count once. When only one side has tokens the inputs share
// nothing and the result is 0; two token-less inputs are identical.
func SetRatio(s1, s2 string, cmp Comparator) float64 {
	t1 := NewSet(Tokenize(s1))
	t2 := NewSet(Tokenize(s2))
	if len(t1) == 0 || len(t2) == 0 {
		if len(t1) == len(t2) {
			return 1
		}
		return 0
	}

	common := strings.Join(t1.Intersect(t2).Sorted(), " ")
	diff1 := strings.Join(t1.Difference(t2).Sorted(), " ")
	diff2 := strings.Join(t2.Difference(t1).Sorted(), " ")

	combo1 := Join(common, diff1)
	combo2 := Join(common, diff2)

	best := cmp(common, combo1)
	if r := cmp(common, combo2); r > best {
		best = r
	}
	if r := cmp(combo1, combo2); r > best {
		best = r
	}
	return best
}
