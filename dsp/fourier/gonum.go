package fourier

import "gonum.org/v1/gonum/dsp/fourier"

// Gonum is a [Transformer] backed by gonum's complex FFT.
//
// gonum computes in complex128; buffers are widened on the way in and
// narrowed on the way out.
type Gonum struct {
	n   int
	fft *fourier.CmplxFFT
	in  []complex128
	out []complex128
}

// NewGonum creates a gonum backed transformer of length n.
func NewGonum(n int) (*Gonum, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	return &Gonum{
		n:   n,
		fft: fourier.NewCmplxFFT(n),
		in:  make([]complex128, n),
		out: make([]complex128, n),
	}, nil
}

// Len returns the transform length.
func (g *Gonum) Len() int { return g.n }

// Forward computes the unnormalized forward DFT of src into dst.
func (g *Gonum) Forward(dst, src []complex64) error {
	if err := checkBuffers(g.n, dst, src); err != nil {
		return err
	}

	widen(g.in, src)
	g.fft.Coefficients(g.out, g.in)
	narrow(dst, g.out)

	return nil
}

// Inverse computes the unnormalized inverse DFT of src into dst.
// CmplxFFT.Sequence is already unscaled.
func (g *Gonum) Inverse(dst, src []complex64) error {
	if err := checkBuffers(g.n, dst, src); err != nil {
		return err
	}

	widen(g.in, src)
	g.fft.Sequence(g.out, g.in)
	narrow(dst, g.out)

	return nil
}
