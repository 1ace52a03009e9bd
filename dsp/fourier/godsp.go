package fourier

import "github.com/mjibson/go-dsp/fft"

// GoDSP is a [Transformer] backed by github.com/mjibson/go-dsp/fft.
type GoDSP struct {
	n  int
	in []complex128
}

// NewGoDSP creates a go-dsp backed transformer of length n.
func NewGoDSP(n int) (*GoDSP, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	return &GoDSP{n: n, in: make([]complex128, n)}, nil
}

// Len returns the transform length.
func (g *GoDSP) Len() int { return g.n }

// Forward computes the unnormalized forward DFT of src into dst.
func (g *GoDSP) Forward(dst, src []complex64) error {
	if err := checkBuffers(g.n, dst, src); err != nil {
		return err
	}

	widen(g.in, src)
	narrow(dst, fft.FFT(g.in))

	return nil
}

// Inverse computes the unnormalized inverse DFT of src into dst.
// go-dsp divides its IFFT by N, which is undone here.
func (g *GoDSP) Inverse(dst, src []complex64) error {
	if err := checkBuffers(g.n, dst, src); err != nil {
		return err
	}

	widen(g.in, src)

	out := fft.IFFT(g.in)
	scale := complex(float64(g.n), 0)
	for i, v := range out {
		dst[i] = complex64(v * scale)
	}

	return nil
}
