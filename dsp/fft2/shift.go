package fft2

import "github.com/cwbudde/algo-specmix/imaging/grid"

// Shift moves the zero-frequency term to the center of the matrix by rolling
// each axis forward by n/2. For odd sizes this matches numpy's fftshift.
func Shift(c grid.Complex) grid.Complex {
	return roll(c, c.Rows/2, c.Cols/2)
}

// InverseShift undoes [Shift] for any parity.
func InverseShift(c grid.Complex) grid.Complex {
	return roll(c, -(c.Rows / 2), -(c.Cols / 2))
}

// ShiftReal applies the [Shift] permutation to a real matrix.
func ShiftReal(m grid.Real) grid.Real {
	out := grid.Real{Shape: m.Shape, Data: make([]float64, len(m.Data))}
	for y := 0; y < m.Rows; y++ {
		dy := mod(y+m.Rows/2, m.Rows)
		for x := 0; x < m.Cols; x++ {
			out.Set(dy, mod(x+m.Cols/2, m.Cols), m.At(y, x))
		}
	}
	return out
}

func roll(c grid.Complex, dyOff, dxOff int) grid.Complex {
	out := grid.Complex{Shape: c.Shape, Data: make([]complex128, len(c.Data))}
	for y := 0; y < c.Rows; y++ {
		dy := mod(y+dyOff, c.Rows)
		for x := 0; x < c.Cols; x++ {
			out.Set(dy, mod(x+dxOff, c.Cols), c.At(y, x))
		}
	}
	return out
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
