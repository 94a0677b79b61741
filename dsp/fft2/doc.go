// Package fft2 provides 2-D discrete Fourier transforms for images.
//
// Transforms are computed by row-column decomposition. Each line length is
// planned with algo-fft; lengths algo-fft cannot plan for (for example large
// primes, depending on the backend version) fall back to gonum's
// arbitrary-length complex FFT, so any image size is accepted.
//
// # Usage
//
//	spec, err := fft2.ForwardReal(pixels)   // numpy fft2
//	centered := fft2.Shift(spec)            // numpy fftshift
//	back, err := fft2.InverseComplex(spec)  // numpy ifft2, normalized
//
// For repeated transforms of the same shape, create a [Plan] once:
//
//	p, err := fft2.NewPlan(rows, cols)
//	err = p.Forward(dst, src)
//	err = p.Inverse(dst, dst)
//
// # Conventions
//
// Forward is unnormalized and Inverse is scaled by 1/(rows*cols), matching
// numpy.fft.fft2/ifft2. [Shift] rolls each axis by floor(n/2); [InverseShift]
// rolls by -floor(n/2).
package fft2
