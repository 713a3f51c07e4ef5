// Package frequency summarizes the spectrum of a numeric buffer.
//
// The buffer is zero-padded to the next power of two and transformed with
// github.com/cwbudde/algo-fft. Reductions over the one-sided magnitude
// spectrum run through the kernel package.
package frequency

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-kernel/kernel"
)

var (
	ErrEmptyInput        = errors.New("frequency: input buffer is empty")
	ErrInvalidSampleRate = errors.New("frequency: sample rate must be positive")
)

// Stats holds spectral statistics of a buffer.
type Stats struct {
	FFTSize       int
	BinCount      int     // FFTSize/2 + 1
	PeakBin       int     // strongest bin, DC included
	PeakFrequency float64 // Hz
	PeakMagnitude float64 // |X[PeakBin]|
	Centroid      float64 // sum(f_i * |X_i|) / sum(|X_i|), Hz
	Energy        float64 // sum(|X_i|^2) over the one-sided spectrum
}

// Calculate transforms x and returns its spectral statistics. sampleRate is
// only used to convert bin indices to Hz.
func Calculate(x []float64, sampleRate float64) (Stats, error) {
	if len(x) == 0 {
		return Stats{}, ErrEmptyInput
	}
	if !(sampleRate > 0) {
		return Stats{}, ErrInvalidSampleRate
	}

	mag, fftSize, err := Magnitude(x)
	if err != nil {
		return Stats{}, err
	}

	s := Stats{
		FFTSize:  fftSize,
		BinCount: len(mag),
	}

	for i, v := range mag {
		if v > s.PeakMagnitude {
			s.PeakMagnitude = v
			s.PeakBin = i
		}
	}
	s.PeakFrequency = binFreq(s.PeakBin, sampleRate, fftSize)

	freqs := make([]float64, len(mag))
	for i := range freqs {
		freqs[i] = binFreq(i, sampleRate, fftSize)
	}

	sumMag := kernel.FastSum(mag)
	if sumMag > 0 {
		weighted, err := kernel.DotProduct(freqs, mag)
		if err != nil {
			return Stats{}, err
		}
		s.Centroid = weighted / sumMag
	}

	if s.Energy, err = kernel.DotProduct(mag, mag); err != nil {
		return Stats{}, err
	}

	return s, nil
}

// Magnitude returns the one-sided magnitude spectrum |X[0..N/2]| of x after
// zero-padding it to N, the next power of two (at least 2).
func Magnitude(x []float64) ([]float64, int, error) {
	fftSize := nextPowerOf2(len(x))

	in := make([]complex128, fftSize)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("frequency: fft plan of size %d: %w", fftSize, err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("frequency: forward fft: %w", err)
	}

	mag := make([]float64, fftSize/2+1)
	for i := range mag {
		mag[i] = cmplx.Abs(out[i])
	}
	return mag, fftSize, nil
}

// binFreq returns the frequency in Hz of bin i of an fftSize-point transform.
func binFreq(i int, sampleRate float64, fftSize int) float64 {
	return float64(i) * sampleRate / float64(fftSize)
}

func nextPowerOf2(n int) int {
	p := 2
	for p < n {
		p <<= 1
	}
	return p
}
