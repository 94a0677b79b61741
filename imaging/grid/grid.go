package grid

import (
	"errors"
	"fmt"
)

// Errors returned by grid constructors.
var (
	ErrInvalidShape = errors.New("grid: invalid shape")
	ErrDataLength   = errors.New("grid: data length does not match shape")
)

// Shape is the (rows, cols) extent of a 2-D matrix. Rows correspond to the
// image height and Cols to the image width.
type Shape struct {
	Rows int
	Cols int
}

// Len returns Rows*Cols.
func (s Shape) Len() int { return s.Rows * s.Cols }

// Valid reports whether both dimensions are positive.
func (s Shape) Valid() bool { return s.Rows > 0 && s.Cols > 0 }

// String formats the shape as "HxW".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

func (s Shape) validate() error {
	if !s.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidShape, s)
	}
	return nil
}

// Real is a row-major matrix of float64 samples.
type Real struct {
	Shape
	Data []float64
}

// NewReal returns a zero-filled matrix of the given shape.
func NewReal(rows, cols int) (Real, error) {
	s := Shape{Rows: rows, Cols: cols}
	if err := s.validate(); err != nil {
		return Real{}, err
	}
	return Real{Shape: s, Data: make([]float64, s.Len())}, nil
}

// RealFromData wraps data without copying. len(data) must equal rows*cols.
func RealFromData(rows, cols int, data []float64) (Real, error) {
	s := Shape{Rows: rows, Cols: cols}
	if err := s.validate(); err != nil {
		return Real{}, err
	}
	if len(data) != s.Len() {
		return Real{}, fmt.Errorf("%w: %d values for %s", ErrDataLength, len(data), s)
	}
	return Real{Shape: s, Data: data}, nil
}

// RealFromRows copies a slice of equally sized rows into a matrix.
func RealFromRows(rows [][]float64) (Real, error) {
	if len(rows) == 0 {
		return Real{}, fmt.Errorf("%w: no rows", ErrInvalidShape)
	}
	m, err := NewReal(len(rows), len(rows[0]))
	if err != nil {
		return Real{}, err
	}
	for y, row := range rows {
		if len(row) != m.Cols {
			return Real{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrDataLength, y, len(row), m.Cols)
		}
		copy(m.Row(y), row)
	}
	return m, nil
}

// At returns the value at row y, column x.
func (m Real) At(y, x int) float64 { return m.Data[y*m.Cols+x] }

// Set stores v at row y, column x.
func (m Real) Set(y, x int, v float64) { m.Data[y*m.Cols+x] = v }

// Row returns row y as a sub-slice sharing memory with m.
func (m Real) Row(y int) []float64 { return m.Data[y*m.Cols : (y+1)*m.Cols] }

// Clone returns a deep copy of m.
func (m Real) Clone() Real {
	d := make([]float64, len(m.Data))
	copy(d, m.Data)
	return Real{Shape: m.Shape, Data: d}
}

// Fill sets every element to v.
func (m Real) Fill(v float64) {
	for i := range m.Data {
		m.Data[i] = v
	}
}

// Rows2D copies m into a freshly allocated slice of rows.
func (m Real) Rows2D() [][]float64 {
	out := make([][]float64, m.Rows)
	for y := range out {
		out[y] = append([]float64(nil), m.Row(y)...)
	}
	return out
}

// Complex is a row-major matrix of complex128 values.
type Complex struct {
	Shape
	Data []complex128
}

// NewComplex returns a zero-filled complex matrix of the given shape.
func NewComplex(rows, cols int) (Complex, error) {
	s := Shape{Rows: rows, Cols: cols}
	if err := s.validate(); err != nil {
		return Complex{}, err
	}
	return Complex{Shape: s, Data: make([]complex128, s.Len())}, nil
}

// ComplexFromReal promotes a real matrix to a complex one with zero imaginary part.
func ComplexFromReal(m Real) Complex {
	d := make([]complex128, len(m.Data))
	for i, v := range m.Data {
		d[i] = complex(v, 0)
	}
	return Complex{Shape: m.Shape, Data: d}
}

// At returns the value at row y, column x.
func (m Complex) At(y, x int) complex128 { return m.Data[y*m.Cols+x] }

// Set stores v at row y, column x.
func (m Complex) Set(y, x int, v complex128) { m.Data[y*m.Cols+x] = v }

// Row returns row y as a sub-slice sharing memory with m.
func (m Complex) Row(y int) []complex128 { return m.Data[y*m.Cols : (y+1)*m.Cols] }

// Clone returns a deep copy of m.
func (m Complex) Clone() Complex {
	d := make([]complex128, len(m.Data))
	copy(d, m.Data)
	return Complex{Shape: m.Shape, Data: d}
}
