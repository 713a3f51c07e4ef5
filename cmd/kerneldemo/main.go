// Command kerneldemo runs the algo-kernel vector kernels on a random vector.
//
// Usage:
//
//	kerneldemo [flags]
//
// Without flags it sums one million uniform random values in [0, 1).
//
// Examples:
//
//	kerneldemo
//	kerneldemo -n 4096 -scale 0.5 -stats
//	kerneldemo -n 8192 -spectrum -rate 44100
//	kerneldemo -dot -dot-len 10
//	kerneldemo -scenarios
//	kerneldemo -info
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-kernel/kernel"
	"github.com/cwbudde/algo-kernel/stats/frequency"
	timestats "github.com/cwbudde/algo-kernel/stats/time"
)

type options struct {
	n        int
	seed     int64
	scale    float64
	dot      bool
	dotLen   int
	stats    bool
	spectrum bool
	rate     float64
}

func main() {
	var opts options
	flag.IntVar(&opts.n, "n", 1_000_000, "length of the random input vector")
	flag.Int64Var(&opts.seed, "seed", 1, "random seed")
	flag.Float64Var(&opts.scale, "scale", 1, "multiply the vector in place by this factor after summing")
	flag.BoolVar(&opts.dot, "dot", false, "compute the dot product with a second random vector")
	flag.IntVar(&opts.dotLen, "dot-len", -1, "length of the second vector for -dot (default: same as -n)")
	flag.BoolVar(&opts.stats, "stats", false, "print summary statistics of the vector")
	flag.BoolVar(&opts.spectrum, "spectrum", false, "print spectral statistics of the vector")
	flag.Float64Var(&opts.rate, "rate", 48000, "sample rate in Hz for -spectrum")
	simdMin := flag.Int("simd-min", -1, "SIMD threshold override (default: "+kernel.SIMDMinLengthEnv+" or built-in)")
	scenarios := flag.Bool("scenarios", false, "run the reference scenarios and exit")
	info := flag.Bool("info", false, "print kernel dispatch information and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kerneldemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the algo-kernel vector kernels on a random vector.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kerneldemo\n")
		fmt.Fprintf(os.Stderr, "  kerneldemo -n 4096 -scale 0.5 -stats\n")
		fmt.Fprintf(os.Stderr, "  kerneldemo -scenarios\n")
	}
	flag.Parse()

	if *simdMin >= 0 {
		kernel.SetSIMDMinLength(*simdMin)
	}

	var err error
	switch {
	case *info:
		err = printInfo(os.Stdout)
	case *scenarios:
		err = runScenarios(os.Stdout)
	default:
		err = run(os.Stdout, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	if opts.n < 0 {
		return fmt.Errorf("vector length must not be negative, got %d", opts.n)
	}

	rng := rand.New(rand.NewSource(opts.seed))
	data := randomVector(rng, opts.n)

	if _, err := fmt.Fprintf(w, "Sum = %v\n", kernel.FastSum(data)); err != nil {
		return err
	}

	if opts.scale != 1 {
		kernel.MultiplyInPlace(data, opts.scale)
		if _, err := fmt.Fprintf(w, "Sum after scaling by %v = %v\n", opts.scale, kernel.FastSum(data)); err != nil {
			return err
		}
	}

	if opts.dot {
		m := opts.dotLen
		if m < 0 {
			m = opts.n
		}
		d, err := kernel.DotProduct(data, randomVector(rng, m))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Dot = %v\n", d); err != nil {
			return err
		}
	}

	if opts.stats {
		if err := printStats(w, timestats.Calculate(data)); err != nil {
			return err
		}
	}

	if opts.spectrum {
		s, err := frequency.Calculate(data, opts.rate)
		if err != nil {
			return err
		}
		if err := printSpectrum(w, s); err != nil {
			return err
		}
	}

	return nil
}

func randomVector(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

func printInfo(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Accelerator\t%s\n", kernel.Accelerator())
	fmt.Fprintf(tw, "SIMD min length\t%d\n", kernel.SIMDMinLength())
	return tw.Flush()
}

func printStats(w io.Writer, s timestats.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Length\t%d\n", s.Length)
	fmt.Fprintf(tw, "Sum\t%.6f\n", s.Sum)
	fmt.Fprintf(tw, "Mean\t%.6f\n", s.Mean)
	fmt.Fprintf(tw, "RMS\t%.6f\n", s.RMS)
	fmt.Fprintf(tw, "StdDev\t%.6f\n", s.StdDev)
	fmt.Fprintf(tw, "Min\t%.6f @ %d\n", s.Min, s.MinPos)
	fmt.Fprintf(tw, "Max\t%.6f @ %d\n", s.Max, s.MaxPos)
	return tw.Flush()
}

func printSpectrum(w io.Writer, s frequency.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "FFT size\t%d\n", s.FFTSize)
	fmt.Fprintf(tw, "Peak\t%.2f Hz (bin %d, |X| %.4f)\n", s.PeakFrequency, s.PeakBin, s.PeakMagnitude)
	fmt.Fprintf(tw, "Centroid\t%.2f Hz\n", s.Centroid)
	return tw.Flush()
}

// runScenarios checks the reference behaviour of the three kernels and
// prints each outcome. It fails on the first scenario that deviates.
func runScenarios(w io.Writer) error {
	v := []float64{1.0, 2.0, 3.0}

	if got := kernel.FastSum(v); got != 6.0 {
		return fmt.Errorf("scenario 1: fast_sum(%v) = %v, want 6", v, got)
	}
	fmt.Fprintf(w, "fast_sum(%v) = %v\n", v, kernel.FastSum(v))

	scaled := append([]float64(nil), v...)
	kernel.MultiplyInPlace(scaled, 2.0)
	if scaled[0] != 2 || scaled[1] != 4 || scaled[2] != 6 {
		return fmt.Errorf("scenario 2: multiply_in_place(%v, 2) = %v, want [2 4 6]", v, scaled)
	}
	fmt.Fprintf(w, "multiply_in_place(%v, 2) -> %v\n", v, scaled)

	d, err := kernel.DotProduct(v, v)
	if err != nil || d != 14.0 {
		return fmt.Errorf("scenario 3: dot_product(%v, %v) = %v, %v, want 14", v, v, d, err)
	}
	fmt.Fprintf(w, "dot_product(%v, %v) = %v\n", v, v, d)

	short := []float64{1.0, 2.0}
	_, err = kernel.DotProduct(short, v)
	if !errors.Is(err, kernel.ErrLengthMismatch) {
		return fmt.Errorf("scenario 4: dot_product(%v, %v) error = %v, want length mismatch", short, v, err)
	}
	fmt.Fprintf(w, "dot_product(%v, %v) -> %v\n", short, v, err)

	empty := []float64{}
	kernel.MultiplyInPlace(empty, 5.0)
	if got := kernel.FastSum(empty); got != 0 || len(empty) != 0 {
		return fmt.Errorf("scenario 5: empty buffer gave sum %v, len %d", got, len(empty))
	}
	fmt.Fprintf(w, "fast_sum([]) = 0, multiply_in_place([], 5) -> []\n")

	return nil
}
