// Package spectrum provides helpers for inspecting complex64 spectra and
// analytic signals.
//
// The package does not transform anything itself. It operates on bins
// produced by a [github.com/cwbudde/algo-analytic/dsp/fourier.Transformer]
// and on time-domain analytic buffers, which share the same representation.
package spectrum
