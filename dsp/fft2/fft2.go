package fft2

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-specmix/imaging/grid"
)

// Errors returned by 2-D transforms.
var (
	ErrEmptyInput    = errors.New("fft2: empty input")
	ErrShapeMismatch = errors.New("fft2: shape mismatch")
)

// line transforms one row or column in place of dst.
type line interface {
	forward(dst, src []complex128) error
	inverse(dst, src []complex128) error
}

// algoLine wraps an algo-fft plan. Its inverse is already normalized by 1/n.
type algoLine struct {
	plan *algofft.Plan[complex128]
}

func (l algoLine) forward(dst, src []complex128) error { return l.plan.Forward(dst, src) }
func (l algoLine) inverse(dst, src []complex128) error { return l.plan.Inverse(dst, src) }

// gonumLine covers lengths algo-fft does not plan for. gonum's inverse is
// unnormalized, so the 1/n factor is applied here.
type gonumLine struct {
	fft     *fourier.CmplxFFT
	scratch []complex128
	scale   complex128
}

func (l *gonumLine) forward(dst, src []complex128) error {
	copy(l.scratch, src)
	l.fft.Coefficients(dst, l.scratch)
	return nil
}

func (l *gonumLine) inverse(dst, src []complex128) error {
	copy(l.scratch, src)
	l.fft.Sequence(dst, l.scratch)
	for i := range dst {
		dst[i] *= l.scale
	}
	return nil
}

// identityLine is the length-1 transform.
type identityLine struct{}

func (identityLine) forward(dst, src []complex128) error { copy(dst, src); return nil }
func (identityLine) inverse(dst, src []complex128) error { copy(dst, src); return nil }

func newLine(n int) line {
	if n == 1 {
		return identityLine{}
	}
	if plan, err := algofft.NewPlan64(n); err == nil {
		return algoLine{plan: plan}
	}
	return &gonumLine{
		fft:     fourier.NewCmplxFFT(n),
		scratch: make([]complex128, n),
		scale:   complex(1/float64(n), 0),
	}
}

// Plan computes 2-D discrete Fourier transforms of a fixed shape by
// row-column decomposition.
//
// A Plan holds scratch buffers and is not safe for concurrent use.
type Plan struct {
	shape  grid.Shape
	rowFFT line
	colFFT line
	colIn  []complex128
	colOut []complex128
}

// NewPlan creates a plan for rows x cols matrices.
func NewPlan(rows, cols int) (*Plan, error) {
	s := grid.Shape{Rows: rows, Cols: cols}
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, s)
	}
	return &Plan{
		shape:  s,
		rowFFT: newLine(cols),
		colFFT: newLine(rows),
		colIn:  make([]complex128, rows),
		colOut: make([]complex128, rows),
	}, nil
}

// Shape returns the matrix shape the plan was created for.
func (p *Plan) Shape() grid.Shape { return p.shape }

// Forward computes the unnormalized forward transform of src into dst.
// dst and src may be the same matrix.
func (p *Plan) Forward(dst, src grid.Complex) error {
	return p.transform(dst, src, false)
}

// Inverse computes the inverse transform of src into dst, scaled by
// 1/(rows*cols) so that Inverse(Forward(x)) == x.
func (p *Plan) Inverse(dst, src grid.Complex) error {
	return p.transform(dst, src, true)
}

func (p *Plan) transform(dst, src grid.Complex, inverse bool) error {
	if src.Shape != p.shape || dst.Shape != p.shape {
		return fmt.Errorf("%w: plan %s, src %s, dst %s", ErrShapeMismatch, p.shape, src.Shape, dst.Shape)
	}

	rowOp, colOp := p.rowFFT.forward, p.colFFT.forward
	if inverse {
		rowOp, colOp = p.rowFFT.inverse, p.colFFT.inverse
	}

	for y := 0; y < p.shape.Rows; y++ {
		if err := rowOp(dst.Row(y), src.Row(y)); err != nil {
			return fmt.Errorf("fft2: row %d: %w", y, err)
		}
	}

	cols := p.shape.Cols
	for x := 0; x < cols; x++ {
		for y := range p.colIn {
			p.colIn[y] = dst.Data[y*cols+x]
		}
		if err := colOp(p.colOut, p.colIn); err != nil {
			return fmt.Errorf("fft2: column %d: %w", x, err)
		}
		for y, v := range p.colOut {
			dst.Data[y*cols+x] = v
		}
	}
	return nil
}

// ForwardReal returns the 2-D transform of a real matrix.
func ForwardReal(m grid.Real) (grid.Complex, error) {
	p, err := NewPlan(m.Rows, m.Cols)
	if err != nil {
		return grid.Complex{}, err
	}
	out := grid.ComplexFromReal(m)
	if err := p.Forward(out, out); err != nil {
		return grid.Complex{}, err
	}
	return out, nil
}

// InverseComplex returns the normalized inverse transform of c.
func InverseComplex(c grid.Complex) (grid.Complex, error) {
	p, err := NewPlan(c.Rows, c.Cols)
	if err != nil {
		return grid.Complex{}, err
	}
	out := c.Clone()
	if err := p.Inverse(out, out); err != nil {
		return grid.Complex{}, err
	}
	return out, nil
}
