package spectrum

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-analytic/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Split writes the real and imaginary parts of in into re and im.
// All three slices must have the same length.
func Split(re, im []float64, in []complex64) {
	for i, c := range in {
		re[i] = float64(real(c))
		im[i] = float64(imag(c))
	}
}

// Magnitude32 returns |X[k]| for each bin.
//
// The computation runs on the vectorized kernels of algo-vecmath. Scratch
// buffers are pooled, so in steady state this allocates only the output.
func Magnitude32(in []complex64) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	Split(re, im, in)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Phase32 returns arg(X[k]) for each bin in radians.
func Phase32(in []complex64) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = math.Atan2(float64(imag(c)), float64(real(c)))
	}
	return out
}

// MagnitudeDB returns 20·log10|X[k]|, floored at floorDB.
func MagnitudeDB(in []complex64, floorDB float64) []float64 {
	out := Magnitude32(in)
	for i, v := range out {
		out[i] = math.Max(core.LinearToDB(v), floorDB)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// GroupDelayFromPhase computes group delay in samples from unwrapped phase.
//
// The phase slice is expected over uniformly spaced FFT bins. fftSize is the
// FFT size that produced those bins. A centered finite difference is used for
// interior bins, with one-sided differences at the endpoints.
func GroupDelayFromPhase(unwrapped []float64, fftSize int) ([]float64, error) {
	if len(unwrapped) < 2 {
		return nil, fmt.Errorf("group delay requires at least 2 phase points: %d", len(unwrapped))
	}
	if fftSize <= 0 {
		return nil, fmt.Errorf("group delay fftSize must be > 0: %d", fftSize)
	}
	dw := 2 * math.Pi / float64(fftSize)
	out := make([]float64, len(unwrapped))
	for i := range unwrapped {
		var dphi float64
		switch i {
		case 0:
			dphi = unwrapped[1] - unwrapped[0]
		case len(unwrapped) - 1:
			dphi = unwrapped[i] - unwrapped[i-1]
		default:
			dphi = (unwrapped[i+1] - unwrapped[i-1]) / 2
		}
		out[i] = -dphi / dw
	}
	return out, nil
}

// BandPeak returns the largest magnitude among bins [lo, hi) and its index.
func BandPeak(mag []float64, lo, hi int) (peak float64, index int, err error) {
	if lo < 0 || hi > len(mag) || lo >= hi {
		return 0, 0, fmt.Errorf("band [%d, %d) out of range for %d bins", lo, hi, len(mag))
	}
	index = lo
	peak = mag[lo]
	for i := lo + 1; i < hi; i++ {
		if mag[i] > peak {
			peak = mag[i]
			index = i
		}
	}
	return peak, index, nil
}
