package buffer

import "sync"

// Pool recycles the Buffers that stage host arrays for the kernels. A host
// binding decodes each incoming array into a pooled Buffer, runs the kernel
// on it and hands the Buffer back with Put.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a Buffer of the given length with every element set to 0,
// whatever it held before it was pooled.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// Decode stages a packed float64 host array in a pooled Buffer.
// On error no Buffer is taken from the pool.
func (p *Pool) Decode(raw []byte) (*Buffer, error) {
	if len(raw)%ElemSize != 0 {
		return nil, ErrInvalidLength
	}
	b := p.Get(len(raw) / ElemSize)
	if err := DecodeInto(b.Samples(), raw); err != nil {
		p.Put(b)
		return nil, err
	}
	return b, nil
}

// DecodeFloat32 stages a packed float32 host array in a pooled Buffer,
// widening every element to float64.
func (p *Pool) DecodeFloat32(raw []byte) (*Buffer, error) {
	x, err := DecodeFloat32(raw)
	if err != nil {
		return nil, err
	}
	b := p.Get(len(x))
	copy(b.Samples(), x)
	return b, nil
}

// Put hands b back for reuse. b must not be used afterwards. Nil is ignored.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
