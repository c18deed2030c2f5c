// Package fuzz dispatches algorithms to the scoring engine and wraps them in
// calculators that add preprocessing, cutoff validation and logging.
package fuzz

import (
	"fmt"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/quick"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/ratio"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/token"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/weighted"
)

// Raw returns the unnormalized similarity fraction in [0, 1] of s1 and s2 under the
// given algorithm.
func Raw(algorithm domain.Algorithm, s1, s2 string) (float64, error) {
	switch algorithm {
	case domain.AlgorithmRatio:
		return ratio.Strings(s1, s2), nil
	case domain.AlgorithmPartialRatio:
		return ratio.PartialStrings(s1, s2), nil
	case domain.AlgorithmTokenSortRatio:
		return token.SortRatio(s1, s2, ratio.Strings), nil
	case domain.AlgorithmPartialTokenSortRatio:
		return token.SortRatio(s1, s2, ratio.PartialStrings), nil
	case domain.AlgorithmTokenSetRatio:
		return token.SetRatio(s1, s2, ratio.Strings), nil
	case domain.AlgorithmPartialTokenSetRatio:
		return token.SetRatio(s1, s2, ratio.PartialStrings), nil
	case domain.AlgorithmWeightedRatio:
		return weighted.Ratio(s1, s2), nil
	case domain.AlgorithmQuickRatio:
		return quick.Strings(s1, s2), nil
	default:
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, algorithm)
	}
}
