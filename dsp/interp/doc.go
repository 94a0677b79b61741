// Package interp provides interpolation primitives and 2-D image resampling.
//
// The scalar kernels are:
//
//   - [Linear]: 2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite (Catmull-Rom)
//
// [Resize] applies either kernel separably to a grid.Real image. Output
// pixel centers map onto the source with the half-pixel convention
// sx = (dx+0.5)*srcW/dstW - 0.5, clamped at the borders, which is the same
// sampling grid OpenCV uses for INTER_LINEAR.
package interp
