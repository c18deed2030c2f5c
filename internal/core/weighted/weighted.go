// Package weighted combines the plain, partial and token ratios into a
// single score, trusting partial alignment less as the length gap between the two
// inputs grows.
package weighted

import (
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/ratio"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/token"
)

// Length ratio boundaries.
const (
	PartialThreshold = 1.5
	LongThreshold    = 8.0
)

// Weights applied to the partial signals.
const (
	PartialScale          = 0.9
	PartialTokenScale     = 0.95
	LongPartialScale      = 0.6
	LongPartialTokenScale = 0.65
)

// Ratio returns the weighted similarity fraction of s1 and s2.
func Ratio(s1, s2 string) float64 {
	r1, r2 := []rune(s1), []rune(s2)

	best := ratio.Ratio(r1, r2)
	if len(r1) == 0 || len(r2) == 0 {
		return best
	}

	lenRatio := LengthRatio(len(r1), len(r2))

	best = max(best,
		token.SortRatio(s1, s2, ratio.Strings),
		token.SetRatio(s1, s2, ratio.Strings),
	)
	if lenRatio < PartialThreshold {
		return best
	}

	partialScale, tokenScale := PartialScale, PartialTokenScale
	if lenRatio >= LongThreshold {
		partialScale, tokenScale = LongPartialScale, LongPartialTokenScale
	}

	return max(best,
		ratio.Partial(r1, r2)*partialScale,
		token.SortRatio(s1, s2, ratio.PartialStrings)*tokenScale,
		token.SetRatio(s1, s2, ratio.PartialStrings)*tokenScale,
	)
}

// LengthRatio returns longer/shorter. Both lengths must be positive.
func LengthRatio(n, m int) float64 {
	if n < m {
		n, m = m, n
	}
	return float64(n) / float64(m)
}
