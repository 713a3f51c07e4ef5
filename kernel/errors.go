package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is matched by every *LengthMismatchError.
	ErrLengthMismatch = errors.New("kernel: length mismatch")

	// ErrInvalidScalar is returned by MultiplyInPlaceFinite for NaN or ±Inf scalars.
	ErrInvalidScalar = errors.New("kernel: scalar must be finite")
)

// LengthMismatchError reports two buffers that were required to have equal
// length but did not. Neither buffer is read or modified when it is returned.
type LengthMismatchError struct {
	Op    string // operation that rejected the buffers, e.g. "dot_product"
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("kernel: %s: length mismatch: %d != %d", e.Op, e.Left, e.Right)
}

func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}

func checkLengths(op string, a, b []float64) error {
	if len(a) != len(b) {
		return &LengthMismatchError{Op: op, Left: len(a), Right: len(b)}
	}
	return nil
}
