// fuzzy_ratio.go
// Package fuzzyratio computes normalized similarity scores between two strings.
// Every function returns an integer in [0, 100]; a score strictly below the
// caller's cutoff is reported as 0. Pass DefaultCutoff to disable filtering.
//
// The ratios are built on the indel distance (insertions and deletions only):
//
//	ratio = 1 - indel(s1, s2) / (len(s1) + len(s2))
//
// Lengths are counted in code points and strings are compared exactly as given;
// use pkg/fuzzy for case folding, punctuation stripping and cutoff validation.
//
// All functions are pure and safe for concurrent use.
package fuzzyratio

import (
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/fuzz"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/quick"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/ratio"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/score"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/token"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/weighted"
)

// DefaultCutoff keeps every score.
const DefaultCutoff = 0

// Ratio compares the two strings as a whole.
//
//	Ratio("this is a test", "this is a test!", 0) // 97
func Ratio(s1, s2 string, cutoff int) int {
	return score.Normalize(ratio.Strings(s1, s2), cutoff)
}

// PartialRatio returns the Ratio of the best alignment of the shorter string
// against the longer one.
//
//	PartialRatio("this is a test", "this is a test!", 0) // 100
func PartialRatio(s1, s2 string, cutoff int) int {
	return score.Normalize(ratio.PartialStrings(s1, s2), cutoff)
}

// TokenSortRatio sorts the whitespace-separated words of both strings before
// comparing them with Ratio.
//
//	TokenSortRatio("fuzzy wuzzy was a bear", "wuzzy fuzzy was a bear", 0) // 100
func TokenSortRatio(s1, s2 string, cutoff int) int {
	return score.Normalize(token.SortRatio(s1, s2, ratio.Strings), cutoff)
}

// PartialTokenSortRatio sorts the words of both strings before comparing them
// with PartialRatio.
func PartialTokenSortRatio(s1, s2 string, cutoff int) int {
	return score.Normalize(token.SortRatio(s1, s2, ratio.PartialStrings), cutoff)
}

// TokenSetRatio compares the words the strings share with the words unique to
// each of them using Ratio. Repeated words count once.
//
//	TokenSortRatio("fuzzy was a bear", "fuzzy fuzzy was a bear", 0) // 84
//	TokenSetRatio("fuzzy was a bear", "fuzzy fuzzy was a bear", 0)  // 100
func TokenSetRatio(s1, s2 string, cutoff int) int {
	return score.Normalize(token.SetRatio(s1, s2, ratio.Strings), cutoff)
}

// PartialTokenSetRatio is TokenSetRatio using PartialRatio for the comparisons.
func PartialTokenSetRatio(s1, s2 string, cutoff int) int {
	return score.Normalize(token.SetRatio(s1, s2, ratio.PartialStrings), cutoff)
}

// WeightedRatio combines the other ratios, discounting partial matches as the
// length gap between the strings grows.
func WeightedRatio(s1, s2 string, cutoff int) int {
	return score.Normalize(weighted.Ratio(s1, s2), cutoff)
}

// QuickRatio estimates Ratio from shared characters only, ignoring their order.
// It never scores below Ratio and treats anagrams as identical.
func QuickRatio(s1, s2 string, cutoff int) int {
	return score.Normalize(quick.Strings(s1, s2), cutoff)
}

// Score runs the algorithm named by name (for example "token_set_ratio" or
// "tokenSetRatio"). It fails only for unknown names.
func Score(name, s1, s2 string, cutoff int) (int, error) {
	algorithm, err := domain.ParseAlgorithm(name)
	if err != nil {
		return 0, err
	}
	raw, err := fuzz.Raw(algorithm, s1, s2)
	if err != nil {
		return 0, err
	}
	return score.Normalize(raw, cutoff), nil
}
