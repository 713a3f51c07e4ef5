package kernel

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernel/internal/sequential"
)

// MultiplyInPlace multiplies each element of x by scalar: x[i] *= scalar.
// The length of x is unchanged and an empty slice is a no-op. Non-finite
// scalars follow IEEE-754 per element (0 * Inf is NaN).
//
// The caller must hold exclusive access to x for the duration of the call.
func MultiplyInPlace(x []float64, scalar float64) {
	if !useSIMD(len(x)) {
		sequential.ScaleInPlace(x, scalar)
		return
	}
	vecmath.ScaleBlockInPlace(x, scalar)
}

// MultiplyInPlaceFinite is MultiplyInPlace for callers that treat a
// non-finite multiplier as a bug. It returns ErrInvalidScalar and leaves x
// untouched when scalar is NaN or ±Inf.
func MultiplyInPlaceFinite(x []float64, scalar float64) error {
	if math.IsNaN(scalar) || math.IsInf(scalar, 0) {
		return ErrInvalidScalar
	}
	MultiplyInPlace(x, scalar)
	return nil
}
