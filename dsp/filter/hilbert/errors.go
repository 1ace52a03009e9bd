package hilbert

import "errors"

// Errors returned by kernel construction and filtering.
var (
	ErrEvenTaps       = errors.New("hilbert: tap count must be odd")
	ErrTooFewTaps     = errors.New("hilbert: tap count must be at least 3")
	ErrTapsExceedSize = errors.New("hilbert: tap count exceeds transform size")
	ErrNilTransformer = errors.New("hilbert: nil transformer")
	ErrLengthMismatch = errors.New("hilbert: buffer length mismatch")
	ErrGuardBand      = errors.New("hilbert: guard band leaves no bins")
)
