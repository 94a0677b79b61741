// Package region builds inclusion masks that restrict a mix to a
// rectangular frequency region.
//
// A rectangle is given in pixel coordinates of the spectrum as the user sees
// it. Bounds are inclusive on both ends, and parts of the rectangle outside
// the matrix are ignored without error:
//
//	mask, err := region.Build(shape, region.Inner, region.Rect{X1: 2, X2: 5, Y1: 2, Y2: 5})
package region
