package fir

import "errors"

// Errors returned by design and construction functions. Streaming
// apply/push operations never fail; their preconditions are checked
// when the owning instance is built.
var (
	ErrInvalidLength     = errors.New("fir: filter length must be > 0")
	ErrUnknownKind       = errors.New("fir: unknown filter kind")
	ErrEvenLength        = errors.New("fir: highpass and bandstop filters require odd length")
	ErrZeroGain          = errors.New("fir: filter normalization gain is zero")
	ErrNilBank           = errors.New("fir: bank must not be nil")
	ErrEmptyPrototype    = errors.New("fir: prototype taps must not be empty")
	ErrIndivisibleLength = errors.New("fir: prototype length not divisible by sub-filter count")
	ErrBankShape         = errors.New("fir: bank shape does not match decomposition")
	ErrInvalidBankShape  = errors.New("fir: bank dimensions must be > 0")
	ErrNotPowerOfTwo     = errors.New("fir: queue window length must be a power of two")
	ErrInvalidQueueCount = errors.New("fir: queue count must be > 0")
)
