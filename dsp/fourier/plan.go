package fourier

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Plan is a [Transformer] backed by an algo-fft complex64 plan.
type Plan struct {
	n       int
	plan    *algofft.Plan[complex64]
	scratch []complex64
}

// NewPlan creates an algo-fft backed transformer of length n.
func NewPlan(n int) (*Plan, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan32(n)
	if err != nil {
		return nil, fmt.Errorf("fourier: NewPlan32(%d): %w", n, err)
	}

	return &Plan{
		n:       n,
		plan:    plan,
		scratch: make([]complex64, n),
	}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// Forward computes the unnormalized forward DFT of src into dst.
func (p *Plan) Forward(dst, src []complex64) error {
	if err := checkBuffers(p.n, dst, src); err != nil {
		return err
	}

	return p.plan.Forward(dst, src)
}

// Inverse computes the unnormalized inverse DFT of src into dst.
//
// algo-fft normalizes its own inverse by 1/N, so the inverse is taken as
// conj(Forward(conj(src))), which carries no scaling.
func (p *Plan) Inverse(dst, src []complex64) error {
	if err := checkBuffers(p.n, dst, src); err != nil {
		return err
	}

	for i, v := range src {
		p.scratch[i] = conj(v)
	}

	if err := p.plan.Forward(dst, p.scratch); err != nil {
		return err
	}

	for i, v := range dst {
		dst[i] = conj(v)
	}

	return nil
}

func conj(v complex64) complex64 {
	return complex(real(v), -imag(v))
}
