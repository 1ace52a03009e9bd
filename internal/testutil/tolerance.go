package testutil

import (
	"math"
	"testing"
)

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// the distance between any element pair exceeds eps.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := ComplexAbs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFiniteComplex fails t if any real or imaginary part is NaN or Inf.
func RequireFiniteComplex(t *testing.T, data []complex64) {
	t.Helper()
	for i, v := range data {
		re, im := float64(real(v)), float64(imag(v))
		if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// ComplexAbs returns |v| computed in float64.
func ComplexAbs(v complex64) float64 {
	return math.Hypot(float64(real(v)), float64(imag(v)))
}
