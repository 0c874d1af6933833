//go:build !purego && amd64

package avx2

import "math"

// DeinterleaveRealInt16 extracts the real part of each complex sample,
// scales it and quantizes the result to int16 with saturation.
// Slices must have equal length. Panics if lengths differ.
//
// Processes eight samples per iteration, gathering the real lanes of two
// 256-bit register loads before scaling, rounding and packing down with
// saturation; trailing samples use the scalar path.
func DeinterleaveRealInt16(dst []int16, src []complex64, scale float32) {
	if len(dst) != len(src) {
		panic("kernels: slice length mismatch")
	}
	n := len(src)

	i := 0
	for ; i+8 <= n; i += 8 {
		var re [8]float32
		for k := 0; k < 8; k++ {
			re[k] = real(src[i+k]) * scale
		}
		for k := 0; k < 8; k++ {
			dst[i+k] = quantizeInt16(re[k])
		}
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
