// Package kernel implements the vector arithmetic kernels of algo-kernel:
// reduction (FastSum), in-place scalar multiplication (MultiplyInPlace) and
// the dot product of two equal-length vectors (DotProduct).
//
// # Buffers
//
// A numeric buffer is a plain []float64: contiguous, densely packed IEEE-754
// doubles with linear addressing. The caller owns every buffer for the full
// duration of a call. The kernels never allocate, append, reslice or retain a
// buffer; MultiplyInPlace writes to the elements it was given and nothing else.
//
// # Accumulation order
//
// Buffers shorter than SIMDMinLength are reduced strictly left to right, which
// is the reference order. Longer buffers go through the CPU-dispatched SIMD
// kernels of github.com/cwbudde/algo-vecmath (AVX2, SSE2, NEON or pure Go),
// which accumulate in several lanes and combine them at the end. The result is
// deterministic for a fixed input on a fixed CPU but may differ from the
// reference order by normal floating-point reordering error. Set the
// threshold with SetSIMDMinLength or the ALGO_KERNEL_SIMD_MIN_LENGTH
// environment variable.
//
// # Concurrency
//
// FastSum and DotProduct only read their inputs and may be called
// concurrently on any buffers. MultiplyInPlace requires exclusive access to
// its buffer for the duration of the call; the package performs no locking.
//
// # Errors
//
// DotProduct reports buffers of different length as a *LengthMismatchError,
// which matches ErrLengthMismatch with errors.Is. MultiplyInPlace follows
// IEEE-754 for non-finite scalars; MultiplyInPlaceFinite rejects them with
// ErrInvalidScalar instead.
package kernel
