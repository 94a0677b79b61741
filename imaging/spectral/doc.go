// Package spectral holds source images together with their 2-D Fourier
// transforms and reconciles image sizes before mixing.
//
// An [Image] derives, from one forward transform, the raw components used
// for reconstruction:
//
//   - MagnitudeRaw = |shift(F)|
//   - PhaseRaw     = arg(shift(F))
//   - RealRaw      = Re(F), unshifted
//   - ImagRaw      = Im(F), unshifted
//
// The mixed shifted/unshifted origin is deliberate and matches the
// reconstruction formulas in the mixer package.
//
// [Normalize] resizes a set of images to the minimum height and width among
// them and returns a [Batch], the only value the mixer accepts.
package spectral
