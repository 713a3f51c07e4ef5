package kernel

import "github.com/cwbudde/algo-vecmath/cpu"

// Accelerator names the instruction set the SIMD kernels dispatch to on this
// host: "avx2", "sse2", "neon" or "generic". Forced features set through
// cpu.SetForcedFeatures are honoured.
func Accelerator() string {
	if pureGo {
		return "generic"
	}

	features := cpu.DetectFeatures()
	switch {
	case cpu.Supports(features, cpu.SIMDAVX2):
		return "avx2"
	case cpu.Supports(features, cpu.SIMDNEON):
		return "neon"
	case cpu.Supports(features, cpu.SIMDSSE2):
		return "sse2"
	default:
		return "generic"
	}
}
