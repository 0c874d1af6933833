package generic

// DotProduct returns the complex dot product of input and taps:
// sum(input[i] * taps[i]). Returns 0 if either slice is empty.
// Only the minimum length of the two slices is used.
//
// The loop keeps two independent (real, imaginary) partial sums over
// alternating samples and combines them at the end; an odd trailing sample
// is added with a direct complex multiply. This is the pure Go reference
// implementation all SIMD variants are tested against.
func DotProduct(input, taps []complex64) complex64 {
	n := len(input)
	if len(taps) < n {
		n = len(taps)
	}
	if n == 0 {
		return 0
	}

	var sum0Re, sum0Im, sum1Re, sum1Im float32

	even := n - n%2
	for i := 0; i < even; i += 2 {
		a0, b0 := input[i], taps[i]
		a1, b1 := input[i+1], taps[i+1]
		sum0Re += real(a0)*real(b0) - imag(a0)*imag(b0)
		sum0Im += real(a0)*imag(b0) + imag(a0)*real(b0)
		sum1Re += real(a1)*real(b1) - imag(a1)*imag(b1)
		sum1Im += real(a1)*imag(b1) + imag(a1)*real(b1)
	}

	sum := complex(sum0Re+sum1Re, sum0Im+sum1Im)
	if n%2 != 0 {
		sum += input[n-1] * taps[n-1]
	}
	return sum
}
