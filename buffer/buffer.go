package buffer

import "unsafe"

// Buffer wraps a []complex64 slice with reuse-friendly semantics and an
// aligned backing array. Kernel functions accept raw []complex64; use
// Samples() to bridge.
type Buffer struct {
	samples []complex64
}

// New returns a zero-filled Buffer of the given length whose backing array
// is aligned to Alignment() bytes.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: MakeComplex64(length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
// The wrapped slice keeps whatever alignment it already has.
func FromSlice(s []complex64) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []complex64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Aligned reports whether the buffer's base address satisfies the given
// byte alignment. Empty buffers report true.
func (b *Buffer) Aligned(align int) bool {
	if len(b.samples) == 0 {
		return true
	}
	return IsAligned(unsafe.Pointer(&b.samples[0]), align)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Growing past the capacity reallocates with an aligned backing array;
// existing data is preserved and new elements are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := MakeComplex64(n)
		copy(s, b.samples)
		b.samples = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.samples[i] = 0
		}
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// Copy returns a deep copy of the buffer with an aligned backing array.
func (b *Buffer) Copy() *Buffer {
	s := MakeComplex64(len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s}
}
