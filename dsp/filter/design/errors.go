package design

import "errors"

// Q limits accepted by Transform, matching the usable resonance range
// of the analog prototypes.
const (
	QMin = 1.0
	QMax = 1000.0
)

var (
	ErrQOutOfRange      = errors.New("design: Q must be in [1, 1000]")
	ErrNilAccumulator   = errors.New("design: gain accumulator must not be nil")
	ErrInvalidFrequency = errors.New("design: cutoff and sample rate must be > 0")
	ErrUnsupportedOrder = errors.New("design: unsupported filter order")
)
