package pool

import (
	"strings"
	"sync"
)

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves an empty buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	buffer := bp.pool.Get().(*[]byte)
	*buffer = (*buffer)[:0]
	return buffer
}

// Put returns a buffer to the pool for reuse. Oversized buffers are dropped so a
// single huge input does not pin memory.
func (bp *BufferPool) Put(buffer *[]byte) {
	if cap(*buffer) > 16*bp.size {
		return
	}
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// StringBuilderPool implements a pool of StringBuilder for efficient string building
type StringBuilderPool struct {
	pool sync.Pool
}

// NewStringBuilderPool creates a new StringBuilder pool
func NewStringBuilderPool() *StringBuilderPool {
	return &StringBuilderPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(StringBuilder)
			},
		},
	}
}

// Get retrieves a StringBuilder from the pool or creates a new one if none are available
func (sbp *StringBuilderPool) Get() *StringBuilder {
	return sbp.pool.Get().(*StringBuilder)
}

// Put returns a StringBuilder to the pool for reuse
func (sbp *StringBuilderPool) Put(sb *StringBuilder) {
	sb.Reset()
	sbp.pool.Put(sb)
}

// StringBuilder wraps strings.Builder so it can be recycled through a pool.
type StringBuilder struct {
	builder strings.Builder
}

// WriteRune writes a rune to the builder
func (sb *StringBuilder) WriteRune(r rune) {
	sb.builder.WriteRune(r)
}

// Len returns the number of accumulated bytes
func (sb *StringBuilder) Len() int {
	return sb.builder.Len()
}

// String returns the accumulated string
func (sb *StringBuilder) String() string {
	return sb.builder.String()
}

// Reset resets the builder for reuse
func (sb *StringBuilder) Reset() {
	sb.builder.Reset()
}
