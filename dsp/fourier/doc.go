// Package fourier provides the fixed-length complex DFT primitive used by the
// analytic filter.
//
// Every backend implements [Transformer]: a forward transform and an
// inverse transform of length [Transformer.Len], both unnormalized. Callers
// divide by the length after an inverse transform.
//
// # Backends
//
//   - [Plan] wraps an algo-fft plan and is the default.
//   - [Gonum] wraps gonum's CmplxFFT.
//   - [GoDSP] wraps go-dsp's fft package.
//   - [Naive] is a direct O(n²) DFT used as a numeric reference.
//
// Use [New] with a [Backend] value (or [ParseBackend] for a name) to build
// one without importing the concrete type.
//
// Transformers own scratch memory and are not safe for concurrent use.
package fourier
