package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// This function uses SIMD-optimized implementations when available (AVX2, SSE2, NEON)
// for improved performance on large spectra. Scratch buffers are pooled
// internally, so in steady state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(re, im, in)

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(re, im, in)

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Energy returns the sum of |X[k]|^2 over all bins.
func Energy(in []complex128) float64 {
	if len(in) == 0 {
		return 0
	}
	return vecmath.Sum(Power(in))
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians, in (-pi, pi].
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// Real returns Re(X[k]) for each bin.
func Real(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = real(c)
	}
	return out
}

// Imag returns Im(X[k]) for each bin.
func Imag(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = imag(c)
	}
	return out
}

// LogMagnitude returns log(|X[k]| + 1), the usual compression for viewing
// magnitude spectra.
func LogMagnitude(in []complex128) []float64 {
	out := Magnitude(in)
	for i, v := range out {
		out[i] = math.Log1p(v)
	}
	return out
}

// LogReal returns log(Re(X[k]) + 1). Bins with Re(X[k]) < -1 yield NaN and
// Re(X[k]) == -1 yields -Inf; callers rendering the result must sanitize it.
func LogReal(in []complex128) []float64 {
	out := Real(in)
	for i, v := range out {
		out[i] = math.Log1p(v)
	}
	return out
}

// LogImag returns log(Im(X[k]) + 1) with the same domain caveats as [LogReal].
func LogImag(in []complex128) []float64 {
	out := Imag(in)
	for i, v := range out {
		out[i] = math.Log1p(v)
	}
	return out
}

func split(re, im []float64, in []complex128) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}
