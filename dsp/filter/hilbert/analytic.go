package hilbert

import (
	"math"

	"github.com/cwbudde/algo-analytic/dsp/spectrum"
)

// Envelope returns |x[i]| for an analytic signal.
func Envelope(x []complex64) []float64 {
	return spectrum.Magnitude32(x)
}

// Phase returns atan2(im, re) for each sample in radians.
func Phase(x []complex64) []float64 {
	return spectrum.Phase32(x)
}

// InstantaneousFrequency returns the phase increment between successive
// samples in cycles per sample. The result has len(x)-1 entries.
func InstantaneousFrequency(x []complex64) []float64 {
	if len(x) < 2 {
		return nil
	}

	phase := spectrum.UnwrapPhase(spectrum.Phase32(x))
	out := make([]float64, len(phase)-1)
	for i := range out {
		out[i] = (phase[i+1] - phase[i]) / (2 * math.Pi)
	}
	return out
}

// AngularDistance returns, for each pair of successive difference vectors
// d[i] = x[i+1]-x[i] and d[i+1], the angle between them scaled into [0, 0.5].
// A clean tone traces a circle and yields its frequency in cycles per sample.
// Pairs involving a zero-length difference yield 0. The result has len(x)-2
// entries.
func AngularDistance(x []complex64) []float64 {
	if len(x) < 3 {
		return nil
	}

	out := make([]float64, len(x)-2)
	for i := range out {
		u := complex128(x[i+1] - x[i])
		v := complex128(x[i+2] - x[i+1])
		out[i] = angleBetween(u, v)
	}
	return out
}

func angleBetween(u, v complex128) float64 {
	norm := math.Hypot(real(u), imag(u)) * math.Hypot(real(v), imag(v))
	if norm == 0 {
		return 0
	}

	cos := (real(u)*real(v) + imag(u)*imag(v)) / norm
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) / (2 * math.Pi)
}
