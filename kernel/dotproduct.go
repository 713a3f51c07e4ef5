package kernel

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernel/internal/sequential"
)

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// Returns 0 for two empty slices.
//
// Slices of different length are rejected with a *LengthMismatchError before
// any element is read; the shorter slice is never zero-padded and the longer
// one never truncated.
func DotProduct(a, b []float64) (float64, error) {
	if err := checkLengths("dot_product", a, b); err != nil {
		return 0, err
	}
	if !useSIMD(len(a)) {
		return sequential.Dot(a, b), nil
	}
	return vecmath.DotProduct(a, b), nil
}
