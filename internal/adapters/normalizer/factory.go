package normalizer

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/ports"
)

// NormalizerFactory creates the appropriate normalizer by type.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType selects a preprocessing pipeline.
type NormalizerType int

const (
	// NoopNormalizerType compares raw code points.
	NoopNormalizerType NormalizerType = iota
	// DefaultNormalizerType lower-cases and strips non-alphanumerics.
	DefaultNormalizerType
	// ASCIINormalizerType also drops non-ASCII runes.
	ASCIINormalizerType
	// FoldingNormalizerType also strips diacritics.
	FoldingNormalizerType
)

var normalizerTypeNames = map[NormalizerType]string{
	NoopNormalizerType:    "none",
	DefaultNormalizerType: "default",
	ASCIINormalizerType:   "ascii",
	FoldingNormalizerType: "folding",
}

func (t NormalizerType) String() string {
	if name, ok := normalizerTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("normalizer(%d)", int(t))
}

// ParseNormalizerType resolves a processor name such as "none" or "ascii".
// The empty string selects NoopNormalizerType.
func ParseNormalizerType(name string) (NormalizerType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return NoopNormalizerType, nil
	}
	for t, n := range normalizerTypeNames {
		if n == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown processor %q (want none, default, ascii or folding)", name)
}

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case DefaultNormalizerType:
		return NewDefaultNormalizer()
	case ASCIINormalizerType:
		return NewASCIINormalizer()
	case FoldingNormalizerType:
		return NewFoldingNormalizer()
	default:
		return NewNoopNormalizer()
	}
}
