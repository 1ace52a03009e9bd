package hilbert

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analytic/dsp/fourier"
	"github.com/cwbudde/algo-analytic/dsp/spectrum"
	"github.com/cwbudde/algo-analytic/dsp/window"
	"gonum.org/v1/gonum/floats"
)

// MinTaps is the shortest supported kernel.
const MinTaps = 3

// rejectionFloorDB bounds per-bin levels so a null in the response yields a
// finite rejection.
const rejectionFloorDB = -300

// Kernel is a Hilbert FIR kernel together with its frequency response.
// A Kernel is immutable once built.
type Kernel struct {
	taps     int
	impulse  []complex64
	response []complex64
}

// Rejection summarises how well a kernel separates the two half-bands.
type Rejection struct {
	PositiveMin float64 // smallest |H| over the positive band
	NegativeMax float64 // largest |H| over the negative band
	NegativeBin int     // bin holding NegativeMax
	DB          float64 // 20·log10(PositiveMin/NegativeMax)
}

// DefaultTaps returns the longest odd tap count that fits in size.
func DefaultTaps(size int) int {
	if size%2 == 0 {
		return size - 1
	}
	return size
}

// Impulse returns the time-domain kernel of the given tap count, zero-padded
// to size samples.
//
// The centre tap mid = (taps-1)/2 is 1. At offset i from the centre, even
// offsets carry the real value -1/(mid-1) on both sides and odd offsets carry
// the imaginary value ±2/(π·i), positive after the centre. Every off-centre
// tap is scaled by 0.53836 + 0.46164·cos(i·π/(mid+1)).
func Impulse(taps, size int) ([]complex64, error) {
	if err := validateTaps(taps, size); err != nil {
		return nil, err
	}

	mid := (taps - 1) / 2

	// Offsets 0..mid from the centre; the lower half mirrors them.
	re := make([]float64, mid+1)
	im := make([]float64, mid+1)
	re[0] = 1
	for i := 1; i <= mid; i++ {
		if i%2 == 0 {
			re[i] = -1 / float64(mid-1)
		} else {
			im[i] = 2 / (math.Pi * float64(i))
		}
	}

	// A symmetric window of taps+2 samples has its endpoints just outside the
	// kernel; its upper half from the peak is the taper.
	taper := window.Generate(window.TypeHammingOptimal, taps+2)[mid+1 : taps+1]
	if err := window.ApplyCoefficientsInPlace(re, taper); err != nil {
		return nil, err
	}
	if err := window.ApplyCoefficientsInPlace(im, taper); err != nil {
		return nil, err
	}

	out := make([]complex64, size)
	out[mid] = 1
	for i := 1; i <= mid; i++ {
		r, q := float32(re[i]), float32(im[i])
		out[mid+i] = complex(r, q)
		out[mid-i] = complex(r, -q)
	}

	return out, nil
}

// BuildKernel builds a kernel of the given tap count sized to tr.Len() and
// computes its frequency response with tr.
func BuildKernel(tr fourier.Transformer, taps int) (*Kernel, error) {
	if tr == nil {
		return nil, ErrNilTransformer
	}

	impulse, err := Impulse(taps, tr.Len())
	if err != nil {
		return nil, err
	}

	response := make([]complex64, len(impulse))
	if err := tr.Forward(response, impulse); err != nil {
		return nil, fmt.Errorf("hilbert: kernel transform: %w", err)
	}

	return &Kernel{taps: taps, impulse: impulse, response: response}, nil
}

// Taps returns the kernel length.
func (k *Kernel) Taps() int { return k.taps }

// Size returns the transform size.
func (k *Kernel) Size() int { return len(k.response) }

// Delay returns the index of the centre tap, which is the group delay of the
// kernel in samples.
func (k *Kernel) Delay() int { return (k.taps - 1) / 2 }

// Impulse returns a copy of the zero-padded time-domain kernel.
func (k *Kernel) Impulse() []complex64 {
	return append([]complex64(nil), k.impulse...)
}

// Response returns a copy of the frequency response.
func (k *Kernel) Response() []complex64 {
	return append([]complex64(nil), k.response...)
}

// Suppression measures the response over the positive band [guard, m/2-guard]
// and the negative band [m/2+guard, m-guard]. guard must be at least 1 so
// that the DC and Nyquist bins, where the response passes through its
// midpoint, are excluded. The band levels are floored at -300 dB.
func (k *Kernel) Suppression(guard int) (Rejection, error) {
	m := len(k.response)
	half := m / 2
	if guard < 1 || half-guard < guard {
		return Rejection{}, fmt.Errorf("%w: guard=%d size=%d", ErrGuardBand, guard, m)
	}

	mag := spectrum.Magnitude32(k.response)
	posBin := guard + floats.MinIdx(mag[guard:half-guard+1])
	negMax, negBin, err := spectrum.BandPeak(mag, half+guard, m-guard+1)
	if err != nil {
		return Rejection{}, fmt.Errorf("%w: %w", ErrGuardBand, err)
	}

	db := spectrum.MagnitudeDB(k.response, rejectionFloorDB)

	return Rejection{
		PositiveMin: mag[posBin],
		NegativeMax: negMax,
		NegativeBin: negBin,
		DB:          db[posBin] - db[negBin],
	}, nil
}

func validateTaps(taps, size int) error {
	switch {
	case taps%2 == 0:
		return fmt.Errorf("%w: %d", ErrEvenTaps, taps)
	case taps < MinTaps:
		return fmt.Errorf("%w: %d", ErrTooFewTaps, taps)
	case taps > size:
		return fmt.Errorf("%w: taps=%d size=%d", ErrTapsExceedSize, taps, size)
	}
	return nil
}
