package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireComplexNearlyEqual fails t if got and want differ by more than the
// given tolerances in either component. A component passes when its
// difference is within abs, or within rel scaled by the larger magnitude.
func RequireComplexNearlyEqual(t *testing.T, got, want complex64, rel, abs float64) {
	t.Helper()
	if !nearlyEqual(float64(real(got)), float64(real(want)), rel, abs) ||
		!nearlyEqual(float64(imag(got)), float64(imag(want)), rel, abs) {
		t.Fatalf("got %v, want %v (rel %v, abs %v)", got, want, rel, abs)
	}
}

func nearlyEqual(got, want, rel, abs float64) bool {
	diff := math.Abs(got - want)
	if diff <= abs {
		return true
	}
	scale := math.Max(math.Abs(got), math.Abs(want))
	return diff <= rel*scale
}

// RequireInt16SliceEqual fails t if got and want differ in length or in any
// element. Quantized outputs compare exactly.
func RequireInt16SliceEqual(t *testing.T, got, want []int16) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// RequireFinite fails t if any sample has a NaN or Inf component.
func RequireFinite(t *testing.T, data []complex64) {
	t.Helper()
	for i, v := range data {
		re, im := float64(real(v)), float64(imag(v))
		if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum modulus of the element-wise difference
// between two slices. Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []complex64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		re := float64(real(a[i]) - real(b[i]))
		im := float64(imag(a[i]) - imag(b[i]))
		if d := math.Hypot(re, im); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
