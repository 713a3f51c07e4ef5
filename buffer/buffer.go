package buffer

import "github.com/cwbudde/algo-kernel/kernel"

// Buffer wraps a float64 slice with reuse-friendly semantics.
// Kernel functions accept raw []float64; use Samples() to bridge.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float64) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of elements.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n > cap(b.samples) {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
		return
	}
	b.samples = b.samples[:n]
	// The backing array may hold stale data from previous use.
	if n > oldLen {
		clear(b.samples[oldLen:n])
	}
}

// Zero sets all elements to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s}
}

// Sum returns kernel.FastSum over the buffer.
func (b *Buffer) Sum() float64 {
	return kernel.FastSum(b.samples)
}

// Scale multiplies every element by s in place (kernel.MultiplyInPlace).
func (b *Buffer) Scale(s float64) {
	kernel.MultiplyInPlace(b.samples, s)
}

// Dot returns kernel.DotProduct of b and o. Buffers of different length are
// reported as *kernel.LengthMismatchError.
func (b *Buffer) Dot(o *Buffer) (float64, error) {
	return kernel.DotProduct(b.samples, o.samples)
}
