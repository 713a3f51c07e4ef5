// Package sequential provides the reference kernels of algo-kernel.
//
// Every reduction accumulates strictly left to right, so results are
// bit-reproducible for a given input regardless of the host CPU. The kernel
// package uses these for short buffers and tests use them as the reference
// accumulation order.
package sequential

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sum := 0.0
	for i := range x {
		sum += x[i]
	}
	return sum
}

// ScaleInPlace multiplies each element by a scalar in-place: x[i] *= scale.
func ScaleInPlace(x []float64, scale float64) {
	for i := range x {
		x[i] *= scale
	}
}

// Dot returns the dot product of a and b: sum(a[i] * b[i]).
// Slices must have equal length. Panics if lengths differ.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("sequential: slice length mismatch")
	}
	if len(a) == 0 {
		return 0
	}

	b = b[:len(a)]
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
