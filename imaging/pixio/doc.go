// Package pixio reads images into grayscale sample grids and writes grids
// back out as 8-bit PNG.
//
// Decoding accepts every format registered with the image package. PNG, JPEG
// and GIF come from the standard library; BMP, TIFF and WebP from
// golang.org/x/image.
package pixio
