package buffer

import (
	"sync"

	"github.com/cwbudde/algo-specmix/imaging/grid"
)

// Pool provides sync.Pool-based Buffer reuse so that repeated mixes of the
// same image size do not reallocate their accumulators.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer with the requested shape.
// Callers must return it via Put when done.
func (p *Pool) Get(shape grid.Shape) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Reset(shape)
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
