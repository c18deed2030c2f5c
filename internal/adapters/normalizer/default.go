package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/pool"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/ports"
)

// DefaultNormalizer lower-cases text, turns every rune that is neither a letter nor
// a digit into a space, collapses runs of spaces and trims both ends.
type DefaultNormalizer struct {
	builderPool *pool.StringBuilderPool
}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{builderPool: pool.NewStringBuilderPool()}
}

// Normalize applies the default pipeline to text.
func (n *DefaultNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	sb := n.builderPool.Get()
	defer n.builderPool.Put(sb)

	pendingSpace := false
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && sb.Len() > 0 {
			sb.WriteRune(' ')
		}
		pendingSpace = false
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

// NoopNormalizer returns text unchanged.
type NoopNormalizer struct{}

// NewNoopNormalizer creates a normalizer that leaves text untouched.
func NewNoopNormalizer() ports.Normalizer {
	return NoopNormalizer{}
}

// Normalize returns text as is.
func (NoopNormalizer) Normalize(text string) string {
	return text
}
