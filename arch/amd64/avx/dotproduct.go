//go:build !purego && amd64

package avx

// DotProduct computes the complex dot product of input and taps without
// conjugation. If the slices differ in length, the shorter length is used.
//
// Four complex samples are folded per iteration into planar accumulators
// shaped like one 256-bit register split into real and imaginary lanes.
// Lanes are reduced left to right and trailing samples are added in
// scalar form.
func DotProduct(input, taps []complex64) complex64 {
	n := len(input)
	if len(taps) < n {
		n = len(taps)
	}

	var accRe, accIm [4]float32

	i := 0
	for ; i+4 <= n; i += 4 {
		a0, b0 := input[i], taps[i]
		a1, b1 := input[i+1], taps[i+1]
		a2, b2 := input[i+2], taps[i+2]
		a3, b3 := input[i+3], taps[i+3]
		accRe[0] += real(a0)*real(b0) - imag(a0)*imag(b0)
		accIm[0] += real(a0)*imag(b0) + imag(a0)*real(b0)
		accRe[1] += real(a1)*real(b1) - imag(a1)*imag(b1)
		accIm[1] += real(a1)*imag(b1) + imag(a1)*real(b1)
		accRe[2] += real(a2)*real(b2) - imag(a2)*imag(b2)
		accIm[2] += real(a2)*imag(b2) + imag(a2)*real(b2)
		accRe[3] += real(a3)*real(b3) - imag(a3)*imag(b3)
		accIm[3] += real(a3)*imag(b3) + imag(a3)*real(b3)
	}

	sum := complex(accRe[0]+accRe[1]+accRe[2]+accRe[3],
		accIm[0]+accIm[1]+accIm[2]+accIm[3])
	for ; i < n; i++ {
		sum += input[i] * taps[i]
	}
	return sum
}
