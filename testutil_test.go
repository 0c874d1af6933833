package kernels

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernels/buffer"
)

// Benchmark sizes shared across all benchmark files
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"16K", 16384},
	{"64K", 65536},
}

// Dot product results are compared against a float64 oracle within these
// tolerances; variants differ only in accumulation order.
const (
	dotRelTol = 1e-4
	dotAbsTol = 1e-3
)

// Test helper functions shared across all test files

// resetDispatchForTest clears the memoized eligible-variant lists so the
// next call re-reads the (possibly forced) CPU features.
func resetDispatchForTest() {
	deinterleaveOnce = sync.Once{}
	deinterleaveEligible = nil
	dotProductOnce = sync.Once{}
	dotProductEligible = nil
}

// splitPlanes separates interleaved complex samples into float64 real and
// imaginary planes.
func splitPlanes(v []complex64) (re, im []float64) {
	re = make([]float64, len(v))
	im = make([]float64, len(v))
	for i, s := range v {
		re[i] = float64(real(s))
		im[i] = float64(imag(s))
	}
	return re, im
}

// dotOracle computes the dot product in float64 from four real-plane dot
// products: re = ar.br - ai.bi, im = ar.bi + ai.br. Accumulating in
// float64 makes it a precision reference every variant must agree with.
func dotOracle(input, taps []complex64) complex64 {
	n := len(input)
	if len(taps) < n {
		n = len(taps)
	}
	ar, ai := splitPlanes(input[:n])
	br, bi := splitPlanes(taps[:n])
	re := vecmath.DotProduct(ar, br) - vecmath.DotProduct(ai, bi)
	im := vecmath.DotProduct(ar, bi) + vecmath.DotProduct(ai, br)
	return complex64(complex(re, im))
}

// misalignedComplex returns a length-n slice guaranteed to miss every
// vector alignment: one element past an aligned base, so the address is
// odd at 16-byte granularity.
func misalignedComplex(n int) []complex64 {
	raw := buffer.MakeComplex64(n + 1)
	return raw[1 : n+1]
}

// misalignedInt16 returns a length-n slice one element past an aligned
// base, 2 bytes off every vector alignment.
func misalignedInt16(n int) []int16 {
	raw := buffer.MakeInt16(n + 1)
	return raw[1 : n+1]
}

func sizeStr(n int) string {
	return "n=" + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	s := ""
	for n > 0 {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	return s
}
