package buffer

import (
	"testing"

	"github.com/cwbudde/algo-specmix/imaging/grid"
)

func requireZero(t *testing.T, b *Buffer) {
	t.Helper()
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("sample %d = %v, want 0", i, v)
		}
	}
}

func TestPoolHandsOutRequestedShape(t *testing.T) {
	p := NewPool()
	for _, s := range []grid.Shape{{Rows: 3, Cols: 5}, {Rows: 1, Cols: 1}, {Rows: 16, Cols: 9}} {
		b := p.Get(s)
		if b.Shape() != s || b.Len() != s.Len() {
			t.Fatalf("Get(%s): shape %s, len %d", s, b.Shape(), b.Len())
		}
		if m := b.Matrix(); m.Shape != s || len(m.Data) != s.Len() {
			t.Fatalf("Matrix() view is %s with %d samples", m.Shape, len(m.Data))
		}
		requireZero(t, b)
		p.Put(b)
	}
}

func TestPoolClearsReturnedAccumulators(t *testing.T) {
	p := NewPool()
	large := grid.Shape{Rows: 4, Cols: 4}
	small := grid.Shape{Rows: 2, Cols: 3}

	b := p.Get(large)
	b.Matrix().Fill(7)
	p.Put(b)

	// Whichever buffer comes back, a smaller shape must not expose stale data.
	requireZero(t, p.Get(small))
	requireZero(t, p.Get(large))
}

func TestPoolIgnoresNil(t *testing.T) {
	p := NewPool()
	p.Put(nil)
	if b := p.Get(grid.Shape{Rows: 2, Cols: 2}); b == nil {
		t.Fatal("Get returned nil after Put(nil)")
	}
}
