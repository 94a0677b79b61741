package buffer

import "github.com/cwbudde/algo-specmix/imaging/grid"

// Buffer is a reusable backing store for one 2-D accumulator.
// Numeric kernels accept raw []float64; use Samples() or Matrix() to bridge.
type Buffer struct {
	shape   grid.Shape
	samples []float64
}

// New returns a zero-filled Buffer for the given shape. Non-positive
// dimensions yield an empty buffer.
func New(shape grid.Shape) *Buffer {
	b := &Buffer{}
	b.Reset(shape)
	return b
}

// Samples returns the underlying slice in row-major order.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Matrix views the buffer as a grid.Real sharing memory with b.
func (b *Buffer) Matrix() grid.Real {
	return grid.Real{Shape: b.shape, Data: b.samples}
}

// Shape returns the current shape.
func (b *Buffer) Shape() grid.Shape {
	return b.shape
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Reset sets the shape, reusing existing capacity when possible, and zeroes
// every sample.
func (b *Buffer) Reset(shape grid.Shape) {
	n := 0
	if shape.Valid() {
		n = shape.Len()
	} else {
		shape = grid.Shape{}
	}
	b.shape = shape
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		b.samples = make([]float64, n)
	}
	b.Zero()
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{shape: b.shape, samples: s}
}
