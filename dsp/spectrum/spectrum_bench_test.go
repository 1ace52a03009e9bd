package spectrum

import (
	"math"
	"testing"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
}

func benchBins(n int) []complex64 {
	in := make([]complex64, n)
	for i := range in {
		in[i] = complex(float32(i)/10, float32(n-i)/10)
	}
	return in
}

func BenchmarkMagnitude32(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			in := benchBins(tc.size)
			b.SetBytes(int64(tc.size * 8)) // complex64 = 8 bytes
			b.ResetTimer()

			for range b.N {
				_ = Magnitude32(in)
			}
		})
	}
}

func BenchmarkMagnitudeNaive(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			in := benchBins(tc.size)
			out := make([]float64, tc.size)
			b.SetBytes(int64(tc.size * 8))
			b.ResetTimer()

			for range b.N {
				for i, c := range in {
					re, im := float64(real(c)), float64(imag(c))
					out[i] = math.Sqrt(re*re + im*im)
				}
			}
		})
	}
}
