// Package score turns raw similarity fractions into the integer scores reported to
// callers and owns the cutoff semantics shared by every ratio.
package score

import (
	"fmt"
	"math"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/domain"
)

const (
	// Min is the lowest score an algorithm can report.
	Min = 0
	// Max is the score of two identical inputs.
	Max = 100
)

// roundingSlack absorbs the representation error of fractions such as 46/80,
// whose nearest float64 lies just below the exact half point. Exact fractions
// with denominators under 5e8 are never closer than this to a half point.
const roundingSlack = 1e-9

// Normalize scales raw (a fraction in [0, 1]) to [0, 100] rounding half up.
// Any score strictly below cutoff collapses to 0.
func Normalize(raw float64, cutoff int) int {
	if math.IsNaN(raw) || raw <= 0 {
		raw = 0
	}
	if raw > 1 {
		raw = 1
	}

	s := int(math.Floor(raw*Max + 0.5 + roundingSlack))
	if s < cutoff {
		return 0
	}
	return s
}

// Fraction returns 1 - num/den, treating an empty denominator as a perfect match.
func Fraction(num, den int) float64 {
	if den == 0 {
		return 1
	}
	return float64(den-num) / float64(den)
}

// ValidateCutoff rejects cutoffs outside [0, 100]. The engine itself never clamps;
// this check belongs to whoever accepts a cutoff from a caller.
func ValidateCutoff(cutoff int) error {
	if cutoff < Min || cutoff > Max {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidCutoff, cutoff)
	}
	return nil
}
