package kernel

import (
	"os"
	"strconv"
	"sync/atomic"
)

// DefaultSIMDMinLength is the buffer length from which the SIMD kernels are
// used. Below it the dispatch cost outweighs the vector speedup.
const DefaultSIMDMinLength = 32

// SIMDMinLengthEnv overrides DefaultSIMDMinLength at program start.
const SIMDMinLengthEnv = "ALGO_KERNEL_SIMD_MIN_LENGTH"

var simdMinLength atomic.Int64

func init() {
	simdMinLength.Store(int64(parseSIMDMinLength(os.Getenv(SIMDMinLengthEnv))))
}

// parseSIMDMinLength returns DefaultSIMDMinLength for empty, malformed or
// negative values.
func parseSIMDMinLength(value string) int {
	if value == "" {
		return DefaultSIMDMinLength
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return DefaultSIMDMinLength
	}
	return parsed
}

// SetSIMDMinLength sets the minimum buffer length at which the SIMD kernels
// are used. Values < 0 are ignored. Use math.MaxInt to force the sequential
// reference order everywhere.
func SetSIMDMinLength(n int) {
	if n < 0 {
		return
	}
	simdMinLength.Store(int64(n))
}

// SIMDMinLength returns the current SIMD threshold.
func SIMDMinLength() int {
	return int(simdMinLength.Load())
}

func useSIMD(n int) bool {
	return n > 0 && int64(n) >= simdMinLength.Load()
}
