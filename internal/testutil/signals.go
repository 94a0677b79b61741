package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/cwbudde/algo-specmix/imaging/grid"
)

// Constant returns a rows x cols image filled with value.
func Constant(rows, cols int, value float64) grid.Real {
	m := mustReal(rows, cols)
	m.Fill(value)
	return m
}

// Checkerboard returns an image alternating between lo and hi per pixel,
// with lo at (0, 0).
func Checkerboard(rows, cols int, lo, hi float64) grid.Real {
	m := mustReal(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if (x+y)%2 == 0 {
				m.Set(y, x, lo)
			} else {
				m.Set(y, x, hi)
			}
		}
	}
	return m
}

// Gradient returns a horizontal ramp from 0 to peak across the columns,
// offset by row so that rows are distinct.
func Gradient(rows, cols int, peak float64) grid.Real {
	m := mustReal(rows, cols)
	den := float64(rows + cols - 2)
	if den == 0 {
		den = 1
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.Set(y, x, peak*float64(x+y)/den)
		}
	}
	return m
}

// DeterministicNoise returns an image of uniform noise in [0, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, rows, cols int, amplitude float64) grid.Real {
	m := mustReal(rows, cols)
	rng := rand.New(rand.NewSource(seed))
	for i := range m.Data {
		m.Data[i] = rng.Float64() * amplitude
	}
	return m
}

// NaiveDFT2 computes the unnormalized 2-D DFT by direct summation. It is
// O((rows*cols)^2) and only meant as a reference for small matrices.
func NaiveDFT2(in grid.Complex) grid.Complex {
	return naive(in, -1, 1)
}

// NaiveIDFT2 computes the inverse 2-D DFT, scaled by 1/(rows*cols).
func NaiveIDFT2(in grid.Complex) grid.Complex {
	return naive(in, 1, 1/float64(in.Len()))
}

func naive(in grid.Complex, sign, scale float64) grid.Complex {
	rows, cols := in.Rows, in.Cols
	out := grid.Complex{Shape: in.Shape, Data: make([]complex128, in.Len())}
	for u := 0; u < rows; u++ {
		for v := 0; v < cols; v++ {
			var acc complex128
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					angle := sign * 2 * math.Pi * (float64(u*y)/float64(rows) + float64(v*x)/float64(cols))
					acc += in.At(y, x) * cmplx.Exp(complex(0, angle))
				}
			}
			out.Set(u, v, acc*complex(scale, 0))
		}
	}
	return out
}

func mustReal(rows, cols int) grid.Real {
	m, err := grid.NewReal(rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}
