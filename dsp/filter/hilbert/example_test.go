package hilbert_test

import (
	"fmt"

	"github.com/cwbudde/algo-analytic/dsp/core"
	"github.com/cwbudde/algo-analytic/dsp/filter/hilbert"
	"github.com/cwbudde/algo-analytic/dsp/fourier"
	"github.com/cwbudde/algo-analytic/dsp/signal"
)

func ExampleImpulse() {
	h, err := hilbert.Impulse(5, 8)
	if err != nil {
		panic(err)
	}

	for _, v := range h[2:5] {
		fmt.Printf("%.4f %.4f\n", real(v), imag(v))
	}
	// Output:
	// 1.0000 0.0000
	// 0.0000 0.4897
	// -0.3075 0.0000
}

func ExampleFilter_ProcessReal() {
	const size = 1024

	tr, err := fourier.New(fourier.BackendAlgoFFT, size)
	if err != nil {
		panic(err)
	}
	f, err := hilbert.NewFilter(tr, hilbert.DefaultTaps(size))
	if err != nil {
		panic(err)
	}

	x, err := signal.NewGenerator(core.WithSampleRate(size)).Sine(3, 1, size)
	if err != nil {
		panic(err)
	}
	y, err := f.ProcessReal(x)
	if err != nil {
		panic(err)
	}

	delay := f.Kernel().Delay()
	fmt.Printf("delay=%d envelope=%.3f\n", delay, hilbert.Envelope(y)[delay])
	// Output: delay=511 envelope=1.002
}
