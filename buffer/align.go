package buffer

import (
	"unsafe"

	"github.com/cwbudde/algo-kernels/cpu"
)

// MaxAlign is the largest byte alignment any kernel variant may require.
// It covers 512-bit vector widths.
const MaxAlign = 64

// Alignment returns the preferred byte alignment for kernel buffers on this
// system, derived from the detected CPU features: 64 when 512-bit vectors
// are available, 32 for 256-bit, 16 otherwise. Buffers allocated with at
// least this alignment are eligible for every aligned-only kernel variant
// the CPU supports.
func Alignment() int {
	f := cpu.DetectFeatures()
	switch {
	case f.HasAVX512:
		return 64
	case f.HasAVX || f.HasAVX2:
		return 32
	default:
		return 16
	}
}

// IsAligned reports whether p is aligned to align bytes.
// align must be a power of two.
func IsAligned(p unsafe.Pointer, align int) bool {
	return uintptr(p)%uintptr(align) == 0
}

// AlignmentOf returns the largest power of two, at most MaxAlign, that
// divides every given pointer. With no pointers it returns MaxAlign.
// Dispatch uses this as the effective alignment of a call's buffers.
func AlignmentOf(ptrs ...unsafe.Pointer) int {
	align := MaxAlign
	for _, p := range ptrs {
		for align > 1 && uintptr(p)%uintptr(align) != 0 {
			align >>= 1
		}
	}
	return align
}

// alignedSlice returns a length-n slice whose backing array starts at an
// address aligned to align bytes. It over-allocates and re-slices; the
// returned slice has capacity n so appends cannot silently outgrow the
// aligned region.
func alignedSlice[T any](n, align int) []T {
	if n < 0 {
		panic("buffer: negative length")
	}
	elem := int(unsafe.Sizeof(*new(T)))
	pad := align / elem
	if pad < 1 {
		pad = 1
	}
	raw := make([]T, n+pad)
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := 0
	if rem := base % uintptr(align); rem != 0 {
		off = int((uintptr(align) - rem)) / elem
	}
	return raw[off : off+n : off+n]
}

// MakeComplex64 returns a zero-filled []complex64 of the given length whose
// backing array is aligned to Alignment() bytes.
func MakeComplex64(n int) []complex64 {
	return alignedSlice[complex64](n, Alignment())
}

// MakeInt16 returns a zero-filled []int16 of the given length whose backing
// array is aligned to Alignment() bytes.
func MakeInt16(n int) []int16 {
	return alignedSlice[int16](n, Alignment())
}

// MakeFloat32 returns a zero-filled []float32 of the given length whose
// backing array is aligned to Alignment() bytes.
func MakeFloat32(n int) []float32 {
	return alignedSlice[float32](n, Alignment())
}
