// Package hilbert builds a windowed FIR Hilbert ("analytic") kernel and
// applies it in the frequency domain to turn a real signal into its analytic,
// single-sideband counterpart.
//
// The kernel is causal: it is centred on tap [Kernel.Delay], so filtered
// output lags the input by that many samples. Applying the kernel is a
// circular convolution over one transform length; [ApplyCircular] computes
// the same result directly in the time domain.
//
// Transforms are supplied by a [fourier.Transformer], which lets callers pick
// the FFT backend.
package hilbert
