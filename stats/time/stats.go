// Package time computes summary statistics of time-domain buffers, such as
// the envelope of an analytic signal.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	Mean           float64
	StdDev         float64 // population standard deviation
	Variation      float64 // StdDev / |Mean|, 0 for a zero mean
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	Range          float64 // max - min
	RMS            float64
	RMS_dB         float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	ZeroCrossings  int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

func emptyStats() Stats {
	return Stats{
		Peak_dB:        math.Inf(-1),
		RMS_dB:         math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate computes all statistics of signal.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return emptyStats()
	}

	mean, std := stat.PopMeanStdDev(signal, nil)
	minPos := floats.MinIdx(signal)
	maxPos := floats.MaxIdx(signal)
	minVal, maxVal := signal[minPos], signal[maxPos]

	energy := floats.Dot(signal, signal)
	rms := math.Sqrt(energy / float64(n))
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	s := Stats{
		Length:         n,
		Mean:           mean,
		StdDev:         std,
		Max:            maxVal,
		MaxPos:         maxPos,
		Min:            minVal,
		MinPos:         minPos,
		Peak:           peak,
		Peak_dB:        ampTodB(peak),
		Range:          maxVal - minVal,
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		Energy:         energy,
		ZeroCrossings:  ZeroCrossings(signal),
		CrestFactor_dB: math.Inf(-1),
	}
	if mean != 0 {
		s.Variation = std / math.Abs(mean)
	}
	if rms != 0 {
		s.CrestFactor = peak / rms
		s.CrestFactor_dB = ampTodB(s.CrestFactor)
	}

	return s
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}
