//go:build !purego && amd64

package avx

import "math"

// DotProductFMA computes the complex dot product of input and taps without
// conjugation, using fused multiply-add sequences for the per-sample
// products. If the slices differ in length, the shorter length is used.
//
// Same lane layout as DotProduct, but each partial product is formed with
// a single rounding: re = fma(ar, br, -(ai*bi)), im = fma(ai, br, ar*bi).
func DotProductFMA(input, taps []complex64) complex64 {
	n := len(input)
	if len(taps) < n {
		n = len(taps)
	}

	var accRe, accIm [4]float32

	i := 0
	for ; i+4 <= n; i += 4 {
		for k := 0; k < 4; k++ {
			a, b := input[i+k], taps[i+k]
			accRe[k] += fmaf(real(a), real(b), -(imag(a) * imag(b)))
			accIm[k] += fmaf(imag(a), real(b), real(a)*imag(b))
		}
	}

	sum := complex(accRe[0]+accRe[1]+accRe[2]+accRe[3],
		accIm[0]+accIm[1]+accIm[2]+accIm[3])
	for ; i < n; i++ {
		sum += input[i] * taps[i]
	}
	return sum
}

// fmaf computes x*y + z with a single rounding.
func fmaf(x, y, z float32) float32 {
	return float32(math.FMA(float64(x), float64(y), float64(z)))
}
