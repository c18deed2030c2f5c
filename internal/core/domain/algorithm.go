package domain

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the ratio functions exposed by the engine.
type Algorithm int

const (
	AlgorithmRatio Algorithm = iota
	AlgorithmPartialRatio
	AlgorithmTokenSortRatio
	AlgorithmPartialTokenSortRatio
	AlgorithmTokenSetRatio
	AlgorithmPartialTokenSetRatio
	AlgorithmWeightedRatio
	AlgorithmQuickRatio
)

var algorithmNames = [...]string{
	AlgorithmRatio:                 "ratio",
	AlgorithmPartialRatio:          "partial_ratio",
	AlgorithmTokenSortRatio:        "token_sort_ratio",
	AlgorithmPartialTokenSortRatio: "partial_token_sort_ratio",
	AlgorithmTokenSetRatio:         "token_set_ratio",
	AlgorithmPartialTokenSetRatio:  "partial_token_set_ratio",
	AlgorithmWeightedRatio:         "weighted_ratio",
	AlgorithmQuickRatio:            "quick_ratio",
}

// Algorithms returns every algorithm in interface order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, len(algorithmNames))
	for i := range algorithmNames {
		all[i] = Algorithm(i)
	}
	return all
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm resolves a snake_case, kebab-case or camelCase algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := canonicalName(name)
	for i, n := range algorithmNames {
		if canonicalName(n) == key {
			return Algorithm(i), nil
		}
	}
	// Short aliases accepted by the CLI.
	switch key {
	case "wratio", "weighted":
		return AlgorithmWeightedRatio, nil
	case "qratio", "quick":
		return AlgorithmQuickRatio, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func canonicalName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
