// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package does not implement FFT itself. It operates on complex bins
// produced by the fft2 package (or any other backend) and extracts the components used
// for spectral mixing: magnitude, phase, real and imaginary parts, plus the
// log-compressed variants used when a spectrum is rendered for viewing.
//
// Raw components feed reconstruction. Log-compressed components are for
// display only and must never be fed back into a mix.
package spectrum
