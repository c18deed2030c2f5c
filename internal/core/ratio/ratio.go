// Package ratio implements the edit-distance based similarity fractions: the plain
// ratio over whole sequences and the partial ratio over the best aligned window.
package ratio

import (
	"unicode/utf8"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/indel"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/score"
)

// Ratio returns 1 - indel(a, b) / (|a| + |b|). Two empty sequences are identical.
func Ratio(a, b []rune) float64 {
	return score.Fraction(indel.Distance(a, b), len(a)+len(b))
}

// Partial slides the shorter sequence across the longer one, including offsets
// where the two only overlap at an edge, and returns the best Ratio between the
// shorter sequence and the overlapping window of the longer one. Sequences of
// equal length are slid both ways so the result stays symmetric.
func Partial(a, b []rune) float64 {
	if len(a) == 0 || len(b) == 0 {
		if len(a) == 0 && len(b) == 0 {
			return 1
		}
		return 0
	}

	switch {
	case len(a) < len(b):
		return slide(a, b)
	case len(a) > len(b):
		return slide(b, a)
	default:
		best := slide(a, b)
		if best == 1 {
			return best
		}
		return max(best, slide(b, a))
	}
}

func slide(shorter, longer []rune) float64 {
	best := 0.0
	for offset := -len(shorter) + 1; offset < len(longer); offset++ {
		start := max(offset, 0)
		end := min(offset+len(shorter), len(longer))

		if r := Ratio(shorter, longer[start:end]); r > best {
			best = r
			if best == 1 {
				break
			}
		}
	}
	return best
}

// Strings applies Ratio to two strings compared by code point.
func Strings(a, b string) float64 {
	if a == b {
		return 1
	}
	return score.Fraction(indel.Strings(a, b), utf8.RuneCountInString(a)+utf8.RuneCountInString(b))
}

// PartialStrings applies Partial to two strings compared by code point.
func PartialStrings(a, b string) float64 {
	return Partial([]rune(a), []rune(b))
}
