package window

import (
	"errors"
	"fmt"
)

var (
	errMismatchedLength = errors.New("window: samples and coefficients must have same length")

	// ErrUnknownKind is returned for a window selector outside the known set.
	ErrUnknownKind = errors.New("window: unknown window kind")
)

func validate(k Kind, size int, beta float64) error {
	if k < KindBoxcar || k > KindKaiser {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d", size)
	}

	if k == KindKaiser && beta < 0 {
		return fmt.Errorf("window: kaiser beta must be >= 0: %f", beta)
	}

	return nil
}
