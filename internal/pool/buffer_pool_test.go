package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPoolReturnsEmptyBuffers(t *testing.T) {
	bp := NewBufferPool(16)

	buf := bp.Get()
	*buf = append(*buf, "hello"...)
	bp.Put(buf)

	again := bp.Get()
	assert.Empty(t, *again)
	assert.GreaterOrEqual(t, cap(*again), 0)
}

func TestStringBuilderPool(t *testing.T) {
	sbp := NewStringBuilderPool()

	sb := sbp.Get()
	for _, r := range "fuzzy é" {
		sb.WriteRune(r)
	}
	assert.Equal(t, "fuzzy é", sb.String())
	assert.Equal(t, len("fuzzy é"), sb.Len())
	sbp.Put(sb)

	next := sbp.Get()
	assert.Equal(t, 0, next.Len())
}
