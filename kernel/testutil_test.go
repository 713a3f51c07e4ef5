package kernel

import (
	"math"
	"strconv"
)

// Benchmark sizes shared across all benchmark files
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"16K", 16384},
	{"64K", 65536},
}

// Sizes straddling DefaultSIMDMinLength and the 2/4-lane SIMD tails.
var testSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000, 1023, 1024, 1025}

func closeEnough(a, b float64) bool {
	const epsilon = 1e-12
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < epsilon
}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}

// withSIMDMinLength sets the threshold for the duration of a test.
func withSIMDMinLength(t interface{ Cleanup(func()) }, n int) {
	old := SIMDMinLength()
	SetSIMDMinLength(n)
	t.Cleanup(func() {
		SetSIMDMinLength(old)
	})
}
