package buffer

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/cwbudde/algo-kernel/kernel"
)

func TestEncodeLayout(t *testing.T) {
	b := Encode([]float64{1.0, -2.5})
	if len(b) != 16 {
		t.Fatalf("len = %d, want 16", len(b))
	}
	// 1.0 = 0x3FF0000000000000, little-endian: sign/exponent byte last.
	if b[7] != 0x3F || b[6] != 0xF0 || b[0] != 0 {
		t.Fatalf("unexpected layout for 1.0: % x", b[:8])
	}
	if got := math.Float64frombits(binary.LittleEndian.Uint64(b[8:])); got != -2.5 {
		t.Fatalf("second element = %v, want -2.5", got)
	}
}

func TestEncodeDecodePreservesBits(t *testing.T) {
	orig := []float64{0, math.Copysign(0, -1), 1.5, -2.25, math.MaxFloat64,
		math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1), scalar.NaNWith(1234)}

	decoded, err := Decode(Encode(orig))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != len(orig) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(orig))
	}
	for i := range orig {
		if math.Float64bits(decoded[i]) != math.Float64bits(orig[i]) {
			t.Fatalf("decoded[%d] bits = %x, want %x", i, math.Float64bits(decoded[i]), math.Float64bits(orig[i]))
		}
	}
}

func TestEncodeDecodeEmpty(t *testing.T) {
	if b := Encode(nil); len(b) != 0 {
		t.Fatalf("expected empty blob for nil slice, got len=%d", len(b))
	}
	x, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) failed: %v", err)
	}
	if len(x) != 0 {
		t.Fatalf("expected empty slice for nil blob, got len=%d", len(x))
	}
}

func TestDecodeInvalidLength(t *testing.T) {
	for _, n := range []int{1, 7, 9, 15} {
		if _, err := Decode(make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Decode(%d bytes) error = %v, want ErrInvalidLength", n, err)
		}
		if err := DecodeInto(make([]float64, 1), make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("DecodeInto(%d bytes) error = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestDecodeIntoEncodeInto(t *testing.T) {
	raw := Encode([]float64{1, 2, 3})

	x := make([]float64, 3)
	if err := DecodeInto(x, raw); err != nil {
		t.Fatalf("DecodeInto failed: %v", err)
	}
	kernel.MultiplyInPlace(x, 2)
	if err := EncodeInto(raw, x); err != nil {
		t.Fatalf("EncodeInto failed: %v", err)
	}

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i, want := range []float64{2, 4, 6} {
		if got[i] != want {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestCodecLengthMismatch(t *testing.T) {
	var lm *kernel.LengthMismatchError

	err := DecodeInto(make([]float64, 2), make([]byte, 24))
	if !errors.As(err, &lm) || lm.Op != "decode" || lm.Left != 2 || lm.Right != 3 {
		t.Fatalf("DecodeInto error = %v, want decode length mismatch 2/3", err)
	}

	err = EncodeInto(make([]byte, 8), []float64{1, 2})
	if !errors.As(err, &lm) || lm.Op != "encode" || lm.Left != 2 || lm.Right != 1 {
		t.Fatalf("EncodeInto error = %v, want encode length mismatch 2/1", err)
	}
}

func TestFromFloat32(t *testing.T) {
	got := FromFloat32([]float32{0.5, -1, 3.25})
	want := []float64{0.5, -1, 3.25}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if len(FromFloat32(nil)) != 0 {
		t.Fatal("FromFloat32(nil) should be empty")
	}
}

func TestDecodeFloat32(t *testing.T) {
	inf32 := float32(math.Inf(1))
	nan32 := float32(math.NaN())

	got, err := DecodeFloat32(float32Bytes(0.5, -1, 3.25, inf32, nan32))
	if err != nil {
		t.Fatalf("DecodeFloat32 failed: %v", err)
	}
	want := []float64{0.5, -1, 3.25, math.Inf(1), math.NaN()}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !scalar.Same(got[i], want[i]) {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if x, err := DecodeFloat32(nil); err != nil || len(x) != 0 {
		t.Fatalf("DecodeFloat32(nil) = %v, %v, want empty", x, err)
	}
	for _, n := range []int{1, 3, 5} {
		if _, err := DecodeFloat32(make([]byte, n)); !errors.Is(err, ErrInvalidFloat32Length) {
			t.Errorf("DecodeFloat32(%d bytes) error = %v, want ErrInvalidFloat32Length", n, err)
		}
	}
}
