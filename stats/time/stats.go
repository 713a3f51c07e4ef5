// Package time computes summary statistics of a numeric buffer. The
// reductions run through the kernel package, so long buffers use the SIMD
// sum and dot-product kernels.
package time

import (
	"math"

	"github.com/cwbudde/algo-kernel/kernel"
)

// Stats holds summary statistics of a buffer.
type Stats struct {
	Length   int
	Sum      float64
	Mean     float64
	Energy   float64 // sum of squares
	RMS      float64
	Variance float64 // population variance
	StdDev   float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
}

// emptyStats returns the statistics of an empty buffer: zero sums and
// extrema, NaN for every mean-derived field.
func emptyStats() Stats {
	nan := math.NaN()
	return Stats{
		Mean:     nan,
		RMS:      nan,
		Variance: nan,
		StdDev:   nan,
	}
}

// Calculate computes all statistics of x. The sum and energy come from
// kernel.FastSum and kernel.DotProduct(x, x); the variance uses the
// corrected two-pass formula for numerical stability.
func Calculate(x []float64) Stats {
	n := len(x)
	if n == 0 {
		return emptyStats()
	}

	s := Stats{Length: n}
	s.Sum = kernel.FastSum(x)
	s.Mean = s.Sum / float64(n)

	// x against itself cannot mismatch.
	s.Energy, _ = kernel.DotProduct(x, x)
	s.RMS = math.Sqrt(s.Energy / float64(n))

	s.Min, s.Max = x[0], x[0]

	var dev, devSq float64
	for i, v := range x {
		d := v - s.Mean
		dev += d
		devSq += d * d

		if v < s.Min {
			s.Min = v
			s.MinPos = i
		}
		if v > s.Max {
			s.Max = v
			s.MaxPos = i
		}
	}

	s.Variance = (devSq - dev*dev/float64(n)) / float64(n)
	s.StdDev = math.Sqrt(s.Variance)

	return s
}
