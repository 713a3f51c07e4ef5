package time

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-kernel/internal/testutil"
)

const tolerance = 1e-10

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || s.Sum != 0 || s.Energy != 0 {
		t.Fatalf("Calculate(nil) = %+v, want zero length, sum and energy", s)
	}
	for name, v := range map[string]float64{"Mean": s.Mean, "RMS": s.RMS, "Variance": s.Variance, "StdDev": s.StdDev} {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN", name, v)
		}
	}
}

func TestCalculateSimple(t *testing.T) {
	s := Calculate([]float64{1, 2, 3})
	if s.Length != 3 || s.Sum != 6 || s.Mean != 2 || s.Energy != 14 {
		t.Fatalf("Calculate() = %+v", s)
	}
	if !scalar.EqualWithinAbs(s.Variance, 2.0/3.0, tolerance) {
		t.Errorf("Variance = %v, want 2/3", s.Variance)
	}
	if !scalar.EqualWithinAbs(s.RMS, math.Sqrt(14.0/3.0), tolerance) {
		t.Errorf("RMS = %v, want sqrt(14/3)", s.RMS)
	}
	if s.Min != 1 || s.MinPos != 0 || s.Max != 3 || s.MaxPos != 2 {
		t.Errorf("extrema = %v@%d / %v@%d", s.Min, s.MinPos, s.Max, s.MaxPos)
	}
}

func TestCalculateDC(t *testing.T) {
	x := make([]float64, 1000)
	for i := range x {
		x[i] = 0.5
	}
	s := Calculate(x)
	if !scalar.EqualWithinAbs(s.Mean, 0.5, tolerance) || !scalar.EqualWithinAbs(s.RMS, 0.5, tolerance) {
		t.Fatalf("DC stats: mean=%v rms=%v, want 0.5", s.Mean, s.RMS)
	}
	if !scalar.EqualWithinAbs(s.Variance, 0, tolerance) {
		t.Fatalf("DC variance = %v, want 0", s.Variance)
	}
}

func TestCalculateMatchesGonum(t *testing.T) {
	for _, n := range []int{1, 7, 64, 1000, 100000} {
		x := testutil.DeterministicNoise(int64(n), 3, n)
		for i := range x {
			x[i] += 10 // offset mean to exercise the two-pass correction
		}

		s := Calculate(x)
		mean, variance := stat.PopMeanVariance(x, nil)

		if !scalar.EqualWithinAbsOrRel(s.Sum, floats.Sum(x), 1e-9, 1e-12) {
			t.Errorf("n=%d: Sum = %v, want %v", n, s.Sum, floats.Sum(x))
		}
		if !scalar.EqualWithinAbsOrRel(s.Mean, mean, 1e-9, 1e-12) {
			t.Errorf("n=%d: Mean = %v, want %v", n, s.Mean, mean)
		}
		if !scalar.EqualWithinAbsOrRel(s.Variance, variance, 1e-9, 1e-9) {
			t.Errorf("n=%d: Variance = %v, want %v", n, s.Variance, variance)
		}
		if s.Max != floats.Max(x) || s.Min != floats.Min(x) {
			t.Errorf("n=%d: extrema %v/%v, want %v/%v", n, s.Min, s.Max, floats.Min(x), floats.Max(x))
		}
	}
}

func TestCalculateSine(t *testing.T) {
	// 100 full cycles of a unit sine: RMS 1/sqrt(2), mean 0.
	x := testutil.DeterministicSine(480, 48000, 1, 10000)
	s := Calculate(x)
	if !scalar.EqualWithinAbs(s.RMS, 1/math.Sqrt2, 1e-9) {
		t.Errorf("RMS = %v, want %v", s.RMS, 1/math.Sqrt2)
	}
	if !scalar.EqualWithinAbs(s.Mean, 0, 1e-9) {
		t.Errorf("Mean = %v, want 0", s.Mean)
	}
}
