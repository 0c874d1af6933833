//go:build !purego && amd64

package sse2

// DotProduct computes the complex dot product of input and taps without
// conjugation. If the slices differ in length, the shorter length is used.
//
// Two complex samples are folded per iteration into a single accumulator
// shaped like one 128-bit register, interleaved as re0, im0, re1, im1.
// The two lanes are combined and trailing samples are added in scalar form.
func DotProduct(input, taps []complex64) complex64 {
	n := len(input)
	if len(taps) < n {
		n = len(taps)
	}

	var acc [4]float32

	i := 0
	for ; i+2 <= n; i += 2 {
		a0, b0 := input[i], taps[i]
		a1, b1 := input[i+1], taps[i+1]
		acc[0] += real(a0)*real(b0) - imag(a0)*imag(b0)
		acc[1] += real(a0)*imag(b0) + imag(a0)*real(b0)
		acc[2] += real(a1)*real(b1) - imag(a1)*imag(b1)
		acc[3] += real(a1)*imag(b1) + imag(a1)*real(b1)
	}

	sum := complex(acc[0]+acc[2], acc[1]+acc[3])
	for ; i < n; i++ {
		sum += input[i] * taps[i]
	}
	return sum
}
