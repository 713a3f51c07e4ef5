// Package buffer adapts host-side numeric arrays to the kernel package.
//
// The kernels operate on plain []float64. Buffer is an optional owner type
// that exposes the kernel operations as methods, Pool recycles Buffers in hot
// paths, and Encode/Decode convert between []float64 and its binary layout:
// densely packed little-endian IEEE-754 doubles, 8 bytes per element, no
// header. That is the memory layout of a C double[] or a JavaScript Float64Array
// on every supported host, so raw bytes obtained from such an array decode
// without reshaping.
package buffer
