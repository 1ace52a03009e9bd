package fourier

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by transformers.
var (
	ErrInvalidLength  = errors.New("fourier: invalid transform length")
	ErrLengthMismatch = errors.New("fourier: buffer length mismatch")
	ErrUnknownBackend = errors.New("fourier: unknown backend")
)

// Transformer is a fixed-length complex DFT.
//
// Forward computes X[k] = sum x[n]·exp(-2πi·kn/N) and Inverse computes
// x[n] = sum X[k]·exp(+2πi·kn/N). Neither direction is scaled. dst and src
// must both have length Len and must not overlap.
type Transformer interface {
	Len() int
	Forward(dst, src []complex64) error
	Inverse(dst, src []complex64) error
}

// Backend selects a [Transformer] implementation.
type Backend int

const (
	BackendAlgoFFT Backend = iota
	BackendGonum
	BackendGoDSP
	BackendNaive
)

var backendNames = map[Backend]string{
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
	BackendGoDSP:   "godsp",
	BackendNaive:   "naive",
}

func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}

	return "unknown"
}

// Backends lists every known backend in declaration order.
func Backends() []Backend {
	return []Backend{BackendAlgoFFT, BackendGonum, BackendGoDSP, BackendNaive}
}

// ParseBackend resolves a backend by name (case-insensitive).
func ParseBackend(name string) (Backend, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, b := range Backends() {
		if backendNames[b] == want {
			return b, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// New creates a transformer of length n using the selected backend.
func New(b Backend, n int) (Transformer, error) {
	switch b {
	case BackendAlgoFFT:
		return NewPlan(n)
	case BackendGonum:
		return NewGonum(n)
	case BackendGoDSP:
		return NewGoDSP(n)
	case BackendNaive:
		return NewNaive(n)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(b))
	}
}

func validateLength(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return nil
}

func checkBuffers(n int, dst, src []complex64) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: len=%d dst=%d src=%d", ErrLengthMismatch, n, len(dst), len(src))
	}

	return nil
}

func widen(dst []complex128, src []complex64) {
	for i, v := range src {
		dst[i] = complex128(v)
	}
}

func narrow(dst []complex64, src []complex128) {
	for i, v := range src {
		dst[i] = complex64(v)
	}
}
