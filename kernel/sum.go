package kernel

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernel/internal/sequential"
)

// FastSum returns the sum of all elements in x.
// Returns exactly 0 for an empty slice. NaN and ±Inf propagate per IEEE-754.
func FastSum(x []float64) float64 {
	if !useSIMD(len(x)) {
		return sequential.Sum(x)
	}
	return vecmath.Sum(x)
}
