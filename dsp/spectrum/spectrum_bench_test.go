package spectrum

import (
	"math/cmplx"
	"testing"
)

var imageSizes = []struct {
	name string
	size int
}{
	{"64x64", 64 * 64},
	{"256x256", 256 * 256},
	{"512x512", 512 * 512},
}

func benchBins(n int) []complex128 {
	in := make([]complex128, n)
	for i := range in {
		in[i] = complex(float64(i)/10.0, float64(n-i)/10.0)
	}
	return in
}

func BenchmarkMagnitude(b *testing.B) {
	for _, tc := range imageSizes {
		b.Run(tc.name, func(b *testing.B) {
			in := benchBins(tc.size)
			b.SetBytes(int64(tc.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Magnitude(in)
			}
		})
	}
}

func BenchmarkMagnitudeNaive(b *testing.B) {
	for _, tc := range imageSizes {
		b.Run(tc.name, func(b *testing.B) {
			in := benchBins(tc.size)
			b.SetBytes(int64(tc.size * 16))
			b.ResetTimer()

			for range b.N {
				out := make([]float64, len(in))
				for i, c := range in {
					out[i] = cmplx.Abs(c)
				}
			}
		})
	}
}

func BenchmarkPhase(b *testing.B) {
	for _, tc := range imageSizes {
		b.Run(tc.name, func(b *testing.B) {
			in := benchBins(tc.size)
			b.SetBytes(int64(tc.size * 16))
			b.ResetTimer()

			for range b.N {
				_ = Phase(in)
			}
		})
	}
}
