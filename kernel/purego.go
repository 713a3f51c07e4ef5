//go:build purego

package kernel

// pureGo is set when algo-vecmath is built without assembly kernels.
const pureGo = true
