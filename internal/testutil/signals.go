package testutil

import (
	"math"
	"math/rand"
)

// ComplexSine returns sin(2π·cycles·i/length) as a complex buffer with zero
// imaginary part.
func ComplexSine(cycles float64, length int) []complex64 {
	out := make([]complex64, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = complex(float32(math.Sin(step*float64(i))), 0)
	}
	return out
}

// ComplexNoise returns complex white noise in [-amplitude, amplitude] on both
// parts, with a fixed seed for reproducibility.
func ComplexNoise(seed int64, amplitude float64, length int) []complex64 {
	out := make([]complex64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(float32(re), float32(im))
	}
	return out
}

// ComplexImpulse returns a unit impulse at pos.
func ComplexImpulse(length, pos int) []complex64 {
	out := make([]complex64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
