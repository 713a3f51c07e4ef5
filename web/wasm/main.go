//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/cwbudde/algo-kernel/buffer"
	"github.com/cwbudde/algo-kernel/kernel"
)

var (
	errNotTypedArray = errors.New("wasm: argument must be a Float64Array or Float32Array")
	errNotFloat64    = errors.New("wasm: in-place operations require a Float64Array")
)

var (
	pool  = buffer.NewPool()
	funcs []js.Func
)

// Every exported function returns an object holding either "value" or
// "error".
func main() {
	api := js.Global().Get("Object").New()

	// fastSum(Float64Array | Float32Array) -> {value} | {error}
	api.Set("fastSum", export(func(args []js.Value) any {
		if len(args) < 1 {
			return result(nil, errors.New("fastSum: one array required"))
		}
		b, err := load(args[0])
		if err != nil {
			return result(nil, fmt.Errorf("fastSum: %w", err))
		}
		defer pool.Put(b)
		return result(b.Sum(), nil)
	}))

	// multiplyInPlace(Float64Array, number) -> {} | {error}
	api.Set("multiplyInPlace", export(func(args []js.Value) any {
		if len(args) < 2 {
			return result(nil, errors.New("multiplyInPlace: array and scalar required"))
		}
		if args[1].Type() != js.TypeNumber {
			return result(nil, errors.New("multiplyInPlace: scalar must be a number"))
		}
		if !isFloat64Array(args[0]) {
			return result(nil, fmt.Errorf("multiplyInPlace: %w", errNotFloat64))
		}
		b, err := load(args[0])
		if err != nil {
			return result(nil, fmt.Errorf("multiplyInPlace: %w", err))
		}
		defer pool.Put(b)
		b.Scale(args[1].Float())
		if err := store(args[0], b); err != nil {
			return result(nil, fmt.Errorf("multiplyInPlace: %w", err))
		}
		return result(nil, nil)
	}))

	// dotProduct(array, array) -> {value} | {error}
	api.Set("dotProduct", export(func(args []js.Value) any {
		if len(args) < 2 {
			return result(nil, errors.New("dotProduct: two arrays required"))
		}
		a, err := load(args[0])
		if err != nil {
			return result(nil, fmt.Errorf("dotProduct: %w", err))
		}
		defer pool.Put(a)
		b, err := load(args[1])
		if err != nil {
			return result(nil, fmt.Errorf("dotProduct: %w", err))
		}
		defer pool.Put(b)

		d, err := a.Dot(b)
		if err != nil {
			return result(nil, err)
		}
		return result(d, nil)
	}))

	api.Set("accelerator", export(func(args []js.Value) any {
		return kernel.Accelerator()
	}))

	js.Global().Set("AlgoKernel", api)
	select {}
}

func result(value any, err error) js.Value {
	res := js.Global().Get("Object").New()
	if err != nil {
		res.Set("error", err.Error())
		return res
	}
	if value != nil {
		res.Set("value", value)
	}
	return res
}

func isFloat64Array(v js.Value) bool {
	return v.Type() == js.TypeObject && v.InstanceOf(js.Global().Get("Float64Array"))
}

func isFloat32Array(v js.Value) bool {
	return v.Type() == js.TypeObject && v.InstanceOf(js.Global().Get("Float32Array"))
}

// rawBytes copies the memory behind a typed array.
func rawBytes(arr js.Value) ([]byte, error) {
	n := arr.Get("byteLength")
	if n.Type() != js.TypeNumber {
		return nil, errNotTypedArray
	}
	raw := make([]byte, n.Int())
	js.CopyBytesToGo(raw, bytesOf(arr))
	return raw, nil
}

// bytesOf returns a Uint8Array view over the memory of a typed array.
func bytesOf(arr js.Value) js.Value {
	return js.Global().Get("Uint8Array").New(arr.Get("buffer"), arr.Get("byteOffset"), arr.Get("byteLength"))
}

// load stages a Float64Array or Float32Array in a pooled Buffer. Float32
// elements are widened to float64.
func load(arr js.Value) (*buffer.Buffer, error) {
	switch {
	case isFloat64Array(arr):
		raw, err := rawBytes(arr)
		if err != nil {
			return nil, err
		}
		return pool.Decode(raw)
	case isFloat32Array(arr):
		raw, err := rawBytes(arr)
		if err != nil {
			return nil, err
		}
		return pool.DecodeFloat32(raw)
	default:
		return nil, errNotTypedArray
	}
}

// store writes b back into the Float64Array it was loaded from.
func store(arr js.Value, b *buffer.Buffer) error {
	raw := make([]byte, b.Len()*buffer.ElemSize)
	if err := buffer.EncodeInto(raw, b.Samples()); err != nil {
		return err
	}
	js.CopyBytesToJS(bytesOf(arr), raw)
	return nil
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
