//go:build !purego && amd64

package avx

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-kernels/arch/generic"
)

func fillTestVectors(n int) (input, taps []complex64) {
	input = make([]complex64, n)
	taps = make([]complex64, n)
	for i := range input {
		input[i] = complex(float32((i*37)%113)/8-6, float32((i*53)%97)/8-5)
		taps[i] = complex(float32((i*29)%101)/16-3, float32((i*41)%89)/16-2)
	}
	return input, taps
}

func closeEnough(got, want complex64, tol float64) bool {
	return closeScalar(float64(real(got)), float64(real(want)), tol) &&
		closeScalar(float64(imag(got)), float64(imag(want)), tol)
}

func closeScalar(got, want, tol float64) bool {
	diff := math.Abs(got - want)
	if diff <= tol {
		return true
	}
	scale := math.Max(math.Abs(got), math.Abs(want))
	return diff <= tol*scale
}

func TestDotProductMatchesGeneric(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 255, 256, 1000, 1024}
	for _, n := range sizes {
		input, taps := fillTestVectors(n)
		want := generic.DotProduct(input, taps)

		if got := DotProduct(input, taps); !closeEnough(got, want, 1e-4) {
			t.Errorf("DotProduct n=%d: got %v, want %v", n, got, want)
		}
		if got := DotProductFMA(input, taps); !closeEnough(got, want, 1e-4) {
			t.Errorf("DotProductFMA n=%d: got %v, want %v", n, got, want)
		}
	}
}

func TestDotProductFMASingleRounding(t *testing.T) {
	// One sample, products chosen so the fused and unfused paths agree
	// exactly after the final addition.
	input := []complex64{complex(float32(3), 5)}
	taps := []complex64{complex(float32(7), 11)}
	want := complex(float32(3*7-5*11), float32(3*11+5*7))
	if got := DotProductFMA(input, taps); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
