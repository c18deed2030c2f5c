package normalizer

import (
	"github.com/baditaflorin/go_fuzzy_ratio/internal/pool"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/ports"
)

const (
	asciiDrop byte = iota
	asciiKeep
	asciiLower
)

// ASCIINormalizer discards every non-ASCII rune and then applies the default
// pipeline using a precomputed decision table.
type ASCIINormalizer struct {
	// Pre-computed decision table for ASCII characters (0-127)
	asciiTable [128]byte

	bytePool *pool.BufferPool
}

// NewASCIINormalizer creates a new ASCII-only normalizer.
func NewASCIINormalizer() ports.Normalizer {
	n := &ASCIINormalizer{
		bytePool: pool.NewBufferPool(8192), // 8K bytes initial capacity
	}

	for i := 0; i < 128; i++ {
		switch b := byte(i); {
		case b >= 'a' && b <= 'z', b >= '0' && b <= '9':
			n.asciiTable[i] = asciiKeep
		case b >= 'A' && b <= 'Z':
			n.asciiTable[i] = asciiLower
		default:
			n.asciiTable[i] = asciiDrop
		}
	}

	return n
}

// Normalize keeps ASCII letters and digits, lower-cased, separated by single spaces.
// Non-ASCII bytes are removed without introducing a separator.
func (n *ASCIINormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}

	pendingSpace := false
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= 128 {
			continue
		}
		switch n.asciiTable[b] {
		case asciiDrop:
			pendingSpace = true
			continue
		case asciiLower:
			b += 'a' - 'A'
		}
		if pendingSpace && len(*buffer) > 0 {
			*buffer = append(*buffer, ' ')
		}
		pendingSpace = false
		*buffer = append(*buffer, b)
	}

	return string(*buffer)
}
