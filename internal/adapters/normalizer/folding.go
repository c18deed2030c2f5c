package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/ports"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldingNormalizer strips diacritics (NFD, drop nonspacing marks, NFC) and then
// applies the default pipeline, so "Café" and "cafe" compare equal.
type FoldingNormalizer struct {
	next ports.Normalizer
}

// NewFoldingNormalizer creates a new diacritic-folding normalizer.
func NewFoldingNormalizer() ports.Normalizer {
	return &FoldingNormalizer{next: NewDefaultNormalizer()}
}

// Normalize folds text and hands it to the default pipeline.
func (n *FoldingNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	// transform.Chain is stateful, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return n.next.Normalize(folded)
}
