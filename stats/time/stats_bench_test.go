package time

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-kernel/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	for _, size := range []int{1024, 65536, 1_000_000} {
		x := testutil.DeterministicUniform(1, size)
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Calculate(x)
			}
		})
	}
}
