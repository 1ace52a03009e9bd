package fourier

import "math"

// Naive is a direct O(n²) DFT. It accumulates in float64 and is intended as
// a reference for validating the fast backends.
type Naive struct {
	n       int
	twiddle []complex128 // exp(-2πi·k/n)
	acc     []complex128
}

// NewNaive creates a reference transformer of length n.
func NewNaive(n int) (*Naive, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	tw := make([]complex128, n)
	for k := range tw {
		s, c := math.Sincos(-2 * math.Pi * float64(k) / float64(n))
		tw[k] = complex(c, s)
	}

	return &Naive{n: n, twiddle: tw, acc: make([]complex128, n)}, nil
}

// Len returns the transform length.
func (d *Naive) Len() int { return d.n }

// Forward computes the unnormalized forward DFT of src into dst.
func (d *Naive) Forward(dst, src []complex64) error {
	if err := checkBuffers(d.n, dst, src); err != nil {
		return err
	}

	d.transform(dst, src, false)

	return nil
}

// Inverse computes the unnormalized inverse DFT of src into dst.
func (d *Naive) Inverse(dst, src []complex64) error {
	if err := checkBuffers(d.n, dst, src); err != nil {
		return err
	}

	d.transform(dst, src, true)

	return nil
}

func (d *Naive) transform(dst, src []complex64, inverse bool) {
	n := d.n
	for k := range d.acc {
		var sum complex128
		for j, x := range src {
			w := d.twiddle[(j*k)%n]
			if inverse {
				w = complex(real(w), -imag(w))
			}
			sum += complex128(x) * w
		}
		d.acc[k] = sum
	}

	narrow(dst, d.acc)
}
