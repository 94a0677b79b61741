// Package grid provides the row-major 2-D matrices shared by the spectral
// mixing packages.
//
// [Real] holds pixel samples, masks and real-valued spectrum components;
// [Complex] holds 2-D Fourier transforms. Both expose their backing slice
// directly so that block kernels from algo-vecmath can operate on whole
// matrices without copying.
package grid
