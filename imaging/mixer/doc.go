// Package mixer reconstructs one image from weighted Fourier components of
// four normalized source images.
//
// All four slot selections must come from one component family: either
// magnitude and phase, or real and imaginary. [SelectFamily] enforces this
// independently of any caller-side validation.
//
// Two behaviors are kept exactly as established and should not be changed
// without product sign-off:
//
//   - Magnitude/phase mixing reads the shifted spectrum while real/imaginary
//     mixing reads the unshifted one, yet both apply the region mask in the
//     same coordinates.
//   - Output is clipped to [0, 225] by default, not [0, 255]. Use [WithClip]
//     to choose another range.
package mixer
