//go:build !purego && arm64

package neon

import "math"

// DotProduct computes the complex dot product of input and taps without
// conjugation. If the slices differ in length, the shorter length is used.
//
// Four complex samples are folded per iteration. Loads are deinterleaved
// into planar real and imaginary lanes, the four cross products are formed
// in full, and the vertical combine feeds planar accumulators. Lanes are
// reduced left to right and trailing samples are added in scalar form.
func DotProduct(input, taps []complex64) complex64 {
	n := len(input)
	if len(taps) < n {
		n = len(taps)
	}

	var accRe, accIm [4]float32

	i := 0
	for ; i+4 <= n; i += 4 {
		for k := 0; k < 4; k++ {
			a, b := input[i+k], taps[i+k]
			rr := real(a) * real(b)
			ii := imag(a) * imag(b)
			ri := real(a) * imag(b)
			ir := imag(a) * real(b)
			accRe[k] += rr - ii
			accIm[k] += ri + ir
		}
	}

	sum := complex(accRe[0]+accRe[1]+accRe[2]+accRe[3],
		accIm[0]+accIm[1]+accIm[2]+accIm[3])
	for ; i < n; i++ {
		sum += input[i] * taps[i]
	}
	return sum
}

// DotProductFMA computes the complex dot product of input and taps without
// conjugation, folding each product into its accumulator with a fused
// multiply-accumulate. If the slices differ in length, the shorter length
// is used.
//
// Two planar accumulator pairs are carried: the first collects ar*br and
// ar*bi, the second collects -(ai*bi) and ai*br. The pairs are combined
// lane-wise before the final reduction.
func DotProductFMA(input, taps []complex64) complex64 {
	n := len(input)
	if len(taps) < n {
		n = len(taps)
	}

	var acc1Re, acc1Im [4]float32
	var acc2Re, acc2Im [4]float32

	i := 0
	for ; i+4 <= n; i += 4 {
		for k := 0; k < 4; k++ {
			a, b := input[i+k], taps[i+k]
			acc1Re[k] = fmaf(real(a), real(b), acc1Re[k])
			acc1Im[k] = fmaf(real(a), imag(b), acc1Im[k])
			acc2Re[k] = fmaf(-imag(a), imag(b), acc2Re[k])
			acc2Im[k] = fmaf(imag(a), real(b), acc2Im[k])
		}
	}

	var re, im float32
	for k := 0; k < 4; k++ {
		re += acc1Re[k] + acc2Re[k]
		im += acc1Im[k] + acc2Im[k]
	}

	sum := complex(re, im)
	for ; i < n; i++ {
		sum += input[i] * taps[i]
	}
	return sum
}

// DotProductUnroll computes the complex dot product of input and taps
// without conjugation, unrolled to eight samples per iteration. If the
// slices differ in length, the shorter length is used.
//
// Loads split the block into even and odd samples, each stream carrying
// its own pair of fused accumulators, so eight independent accumulation
// chains are in flight. Streams are merged lane-wise, the accumulator
// pairs combined, and lanes reduced left to right.
func DotProductUnroll(input, taps []complex64) complex64 {
	n := len(input)
	if len(taps) < n {
		n = len(taps)
	}

	var acc1Re, acc1Im [4]float32
	var acc2Re, acc2Im [4]float32
	var acc3Re, acc3Im [4]float32
	var acc4Re, acc4Im [4]float32

	i := 0
	for ; i+8 <= n; i += 8 {
		for k := 0; k < 4; k++ {
			ae, be := input[i+2*k], taps[i+2*k]
			ao, bo := input[i+2*k+1], taps[i+2*k+1]
			acc1Re[k] = fmaf(real(ae), real(be), acc1Re[k])
			acc1Im[k] = fmaf(real(ae), imag(be), acc1Im[k])
			acc2Re[k] = fmaf(-imag(ae), imag(be), acc2Re[k])
			acc2Im[k] = fmaf(imag(ae), real(be), acc2Im[k])
			acc3Re[k] = fmaf(real(ao), real(bo), acc3Re[k])
			acc3Im[k] = fmaf(real(ao), imag(bo), acc3Im[k])
			acc4Re[k] = fmaf(-imag(ao), imag(bo), acc4Re[k])
			acc4Im[k] = fmaf(imag(ao), real(bo), acc4Im[k])
		}
	}

	for k := 0; k < 4; k++ {
		acc1Re[k] += acc3Re[k]
		acc1Im[k] += acc3Im[k]
		acc2Re[k] += acc4Re[k]
		acc2Im[k] += acc4Im[k]
	}

	var re, im float32
	for k := 0; k < 4; k++ {
		re += acc1Re[k] + acc2Re[k]
		im += acc1Im[k] + acc2Im[k]
	}

	sum := complex(re, im)
	for ; i < n; i++ {
		sum += input[i] * taps[i]
	}
	return sum
}

// fmaf computes x*y + z with a single rounding.
func fmaf(x, y, z float32) float32 {
	return float32(math.FMA(float64(x), float64(y), float64(z)))
}
