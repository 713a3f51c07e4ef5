package buffer

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/cwbudde/algo-kernel/kernel"
)

const (
	// ElemSize is the encoded size of one element in bytes.
	ElemSize = 8

	// Float32Size is the size of one single-precision host element.
	Float32Size = 4
)

var (
	// ErrInvalidLength is returned when an encoded buffer is not a whole
	// number of elements.
	ErrInvalidLength = errors.New("buffer: encoded length is not a multiple of 8")

	// ErrInvalidFloat32Length is returned when a single-precision host array
	// is not a whole number of elements.
	ErrInvalidFloat32Length = errors.New("buffer: float32 length is not a multiple of 4")
)

// Encode returns the packed little-endian representation of x.
// An empty slice encodes to nil.
func Encode(x []float64) []byte {
	if len(x) == 0 {
		return nil
	}
	b := make([]byte, len(x)*ElemSize)
	putFloats(b, x)
	return b
}

// EncodeInto writes the packed representation of x into dst, which must be
// exactly len(x)*ElemSize bytes long.
func EncodeInto(dst []byte, x []float64) error {
	if len(dst) != len(x)*ElemSize {
		return &kernel.LengthMismatchError{Op: "encode", Left: len(x), Right: len(dst) / ElemSize}
	}
	putFloats(dst, x)
	return nil
}

// Decode decodes a packed little-endian buffer produced by Encode or taken
// from a host float64 array.
func Decode(b []byte) ([]float64, error) {
	if len(b)%ElemSize != 0 {
		return nil, ErrInvalidLength
	}
	if len(b) == 0 {
		return nil, nil
	}
	x := make([]float64, len(b)/ElemSize)
	getFloats(x, b)
	return x, nil
}

// DecodeInto decodes b into dst without allocating. dst must hold exactly
// len(b)/ElemSize elements.
func DecodeInto(dst []float64, b []byte) error {
	if len(b)%ElemSize != 0 {
		return ErrInvalidLength
	}
	if len(dst) != len(b)/ElemSize {
		return &kernel.LengthMismatchError{Op: "decode", Left: len(dst), Right: len(b) / ElemSize}
	}
	getFloats(dst, b)
	return nil
}

// DecodeFloat32 decodes packed little-endian float32 values, the layout of a
// host Float32Array, and widens them to float64.
func DecodeFloat32(b []byte) ([]float64, error) {
	if len(b)%Float32Size != 0 {
		return nil, ErrInvalidFloat32Length
	}
	src := make([]float32, len(b)/Float32Size)
	for i := range src {
		src[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*Float32Size:]))
	}
	return FromFloat32(src), nil
}

// FromFloat32 widens a single-precision host array to a new float64 slice.
func FromFloat32(src []float32) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}

func putFloats(b []byte, x []float64) {
	for i, v := range x {
		binary.LittleEndian.PutUint64(b[i*ElemSize:], math.Float64bits(v))
	}
}

func getFloats(x []float64, b []byte) {
	for i := range x {
		x[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*ElemSize:]))
	}
}
