// Package window generates the cosine-sum taper applied to FIR kernels.
package window

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	// TypeHammingOptimal is the Hamming window with the equiripple weights
	// 0.53836/0.46164.
	TypeHammingOptimal Type = iota
)

// Metadata holds nominal spectral properties of a window type.
type Metadata struct {
	Name string
	ENBW float64 // equivalent noise bandwidth in bins
}

var errMismatchedLength = errors.New("window: samples and coefficients must have same length")

// w(x) = Σ c[k]·cos(2πkx) over x in [0, 1].
var cosineTerms = map[Type][]float64{
	TypeHammingOptimal: {0.53836, -0.46164},
}

var metadataByType = map[Type]Metadata{
	TypeHammingOptimal: {Name: "Hamming (optimal)", ENBW: 1.37},
}

// Generate returns the symmetric window of the given length, or nil for an
// unknown type or a non-positive length.
func Generate(t Type, length int) []float64 {
	terms, ok := cosineTerms[t]
	if !ok || length <= 0 {
		return nil
	}

	out := make([]float64, length)
	den := float64(length - 1)
	for i := range out {
		x := 0.0
		if length > 1 {
			x = float64(i) / den
		}
		for k, c := range terms {
			out[i] += c * math.Cos(2*math.Pi*float64(k)*x)
		}
	}

	return out
}

// Info returns the metadata of a window type; unknown types yield the zero
// value.
func Info(t Type) Metadata {
	return metadataByType[t]
}

// ApplyCoefficientsInPlace multiplies samples by coeffs element-wise.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}
