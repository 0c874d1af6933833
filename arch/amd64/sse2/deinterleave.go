//go:build !purego && amd64

package sse2

import "math"

// DeinterleaveRealInt16 extracts the real part of each complex sample,
// scales it and quantizes the result to int16 with saturation.
// Slices must have equal length. Panics if lengths differ.
//
// Processes four samples per iteration, gathering the real lanes of two
// 128-bit register loads before scaling and quantizing; trailing samples
// use the scalar path.
func DeinterleaveRealInt16(dst []int16, src []complex64, scale float32) {
	if len(dst) != len(src) {
		panic("kernels: slice length mismatch")
	}
	n := len(src)

	i := 0
	for ; i+4 <= n; i += 4 {
		r0 := real(src[i]) * scale
		r1 := real(src[i+1]) * scale
		r2 := real(src[i+2]) * scale
		r3 := real(src[i+3]) * scale
		dst[i] = quantizeInt16(r0)
		dst[i+1] = quantizeInt16(r1)
		dst[i+2] = quantizeInt16(r2)
		dst[i+3] = quantizeInt16(r3)
	}
	for ; i < n; i++ {
		dst[i] = quantizeInt16(real(src[i]) * scale)
	}
}

// quantizeInt16 rounds x to the nearest integer (ties to even) and saturates
// to the int16 range. Must match the generic variant exactly.
func quantizeInt16(x float32) int16 {
	r := math.RoundToEven(float64(x))
	if r > math.MaxInt16 {
		return math.MaxInt16
	}
	if r < math.MinInt16 {
		return math.MinInt16
	}
	return int16(r)
}
