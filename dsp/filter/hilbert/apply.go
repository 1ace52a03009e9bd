package hilbert

import (
	"fmt"

	"github.com/cwbudde/algo-analytic/dsp/core"
	"github.com/cwbudde/algo-analytic/dsp/fourier"
)

// Apply filters x with a frequency response: it forward transforms x,
// multiplies it bin by bin with response, inverse transforms the
// product and scales it by 1/m. response, x and tr must share length m.
func Apply(tr fourier.Transformer, response, x []complex64) ([]complex64, error) {
	if tr == nil {
		return nil, ErrNilTransformer
	}
	if err := checkLengths(tr.Len(), response, x); err != nil {
		return nil, err
	}

	out := make([]complex64, len(x))
	if err := applyTo(tr, response, out, x, make([]complex64, len(x))); err != nil {
		return nil, err
	}

	return out, nil
}

// Filter applies one prebuilt kernel to any number of buffers.
//
// A Filter owns scratch memory and is not safe for concurrent use.
type Filter struct {
	tr     fourier.Transformer
	kernel *Kernel
	spec   []complex64
	lift   []complex64
}

// NewFilter builds a kernel of the given tap count for tr.
func NewFilter(tr fourier.Transformer, taps int) (*Filter, error) {
	k, err := BuildKernel(tr, taps)
	if err != nil {
		return nil, err
	}

	return &Filter{
		tr:     tr,
		kernel: k,
		spec:   make([]complex64, tr.Len()),
	}, nil
}

// Kernel returns the filter kernel.
func (f *Filter) Kernel() *Kernel { return f.kernel }

// Process filters src into a newly allocated buffer.
func (f *Filter) Process(src []complex64) ([]complex64, error) {
	dst := make([]complex64, len(src))
	if err := f.ProcessTo(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// ProcessTo filters src into dst. Both must have the transform length and
// must not overlap.
func (f *Filter) ProcessTo(dst, src []complex64) error {
	if err := checkLengths(f.tr.Len(), dst, src); err != nil {
		return err
	}
	return applyTo(f.tr, f.kernel.response, dst, src, f.spec)
}

// ProcessReal filters a real signal, returning its analytic counterpart.
func (f *Filter) ProcessReal(src []float64) ([]complex64, error) {
	if len(src) != f.tr.Len() {
		return nil, fmt.Errorf("%w: size=%d signal=%d", ErrLengthMismatch, f.tr.Len(), len(src))
	}

	f.lift = core.EnsureLen(f.lift, len(src))
	for i, v := range src {
		f.lift[i] = complex(float32(v), 0)
	}

	return f.Process(f.lift)
}

// ApplyCircular convolves x with impulse circularly in the time domain,
// y[i] = Σ h[j]·x[(i-j) mod m]. It is an O(m²) reference for [Apply].
func ApplyCircular(impulse, x []complex64) ([]complex64, error) {
	m := len(x)
	if m == 0 || len(impulse) != m {
		return nil, fmt.Errorf("%w: impulse=%d signal=%d", ErrLengthMismatch, len(impulse), m)
	}

	out := make([]complex64, m)
	for i := range out {
		var acc complex128
		for j, h := range impulse {
			if h == 0 {
				continue
			}
			idx := i - j
			if idx < 0 {
				idx += m
			}
			acc += complex128(h) * complex128(x[idx])
		}
		out[i] = complex64(acc)
	}

	return out, nil
}

func applyTo(tr fourier.Transformer, response, dst, src, spec []complex64) error {
	if err := tr.Forward(spec, src); err != nil {
		return fmt.Errorf("hilbert: forward transform: %w", err)
	}

	for i, h := range response {
		spec[i] *= h
	}

	if err := tr.Inverse(dst, spec); err != nil {
		return fmt.Errorf("hilbert: inverse transform: %w", err)
	}

	scale := complex(1/float32(len(dst)), 0)
	for i := range dst {
		dst[i] *= scale
	}

	return nil
}

func checkLengths(m int, bufs ...[]complex64) error {
	for _, b := range bufs {
		if len(b) != m {
			return fmt.Errorf("%w: size=%d buffer=%d", ErrLengthMismatch, m, len(b))
		}
	}
	return nil
}
