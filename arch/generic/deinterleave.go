package generic

import "math"

// DeinterleaveRealInt16 extracts the real part of each complex sample,
// scales it and quantizes the result to int16: dst[i] = clamp(round(scale * real(src[i]))).
// Rounding is to nearest with ties to even; results outside the int16 range
// saturate to the nearest boundary. Slices must have equal length.
// Panics if lengths differ. This is the pure Go reference implementation.
func DeinterleaveRealInt16(dst []int16, src []complex64, scale float32) {
	if len(dst) != len(src) {
		panic("kernels: slice length mismatch")
	}
	for i, s := range src {
		dst[i] = quantizeInt16(real(s) * scale)
	}
}

// quantizeInt16 rounds x to the nearest integer (ties to even) and saturates
// to the int16 range.
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
