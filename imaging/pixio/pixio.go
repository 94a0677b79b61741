package pixio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-vecmath"
	_ "golang.org/x/image/bmp"  // register BMP
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/cwbudde/algo-specmix/imaging/grid"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("pixio: empty image")

// Luma weights (ITU-R BT.601) applied to 8-bit channel values.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Decode reads an image and converts it to grayscale samples on a 0..255
// scale. It also returns the format name reported by the decoder.
func Decode(r io.Reader) (grid.Real, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return grid.Real{}, "", fmt.Errorf("pixio: decode: %w", err)
	}
	m, err := Grayscale(img)
	return m, format, err
}

// ReadFile decodes the image stored at path.
func ReadFile(path string) (grid.Real, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Real{}, err
	}
	defer f.Close()

	m, _, err := Decode(f)
	if err != nil {
		return grid.Real{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Grayscale converts img to luma samples. Color channels are read without
// alpha premultiplication where the source format stores them that way.
func Grayscale(img image.Image) (grid.Real, error) {
	b := img.Bounds()
	if b.Empty() {
		return grid.Real{}, ErrEmptyImage
	}
	out, err := grid.NewReal(b.Dy(), b.Dx())
	if err != nil {
		return grid.Real{}, err
	}

	if g, ok := img.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		for y := range out.Rows {
			row := out.Row(y)
			src := g.Pix[y*g.Stride : y*g.Stride+out.Cols]
			for x, v := range src {
				row[x] = float64(v)
			}
		}
		return out, nil
	}

	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		for y := range out.Rows {
			row := out.Row(y)
			for x := range row {
				p := n.Pix[y*n.Stride+4*x:]
				row[x] = lumaR*float64(p[0]) + lumaG*float64(p[1]) + lumaB*float64(p[2])
			}
		}
		return out, nil
	}

	nrgba, ok := img.(*image.NRGBA64)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)
	}

	for y := range out.Rows {
		row := out.Row(y)
		for x := range row {
			c := nrgba.NRGBA64At(x, y)
			row[x] = lumaR*channel(c.R) + lumaG*channel(c.G) + lumaB*channel(c.B)
		}
	}
	return out, nil
}

func channel(v uint16) float64 { return float64(v) / 257 }

// Gray8 converts m to an 8-bit grayscale image. Values are rounded and
// clamped to [0, 255]; NaN becomes 0.
func Gray8(m grid.Real) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Cols, m.Rows))
	for y := range m.Rows {
		dst := img.Pix[y*img.Stride : y*img.Stride+m.Cols]
		for x, v := range m.Row(y) {
			dst[x] = toByte(v)
		}
	}
	return img
}

func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

// Stretch linearly maps the finite range of m onto [0, 255]. Non-finite
// samples become 0. A constant grid maps to all zeros.
func Stretch(m grid.Real) grid.Real {
	out := m.Clone()
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range out.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out.Data[i] = math.NaN()
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if !(hi > lo) {
		out.Fill(0)
		return out
	}
	for i, v := range out.Data {
		if math.IsNaN(v) {
			out.Data[i] = 0
			continue
		}
		out.Data[i] = v - lo
	}
	vecmath.ScaleBlockInPlace(out.Data, 255/(hi-lo))
	return out
}

// EncodePNG writes m as an 8-bit grayscale PNG, optionally stretched to the
// full output range first.
func EncodePNG(w io.Writer, m grid.Real, stretch bool) error {
	if !m.Valid() {
		return ErrEmptyImage
	}
	if stretch {
		m = Stretch(m)
	}
	if err := png.Encode(w, Gray8(m)); err != nil {
		return fmt.Errorf("pixio: encode: %w", err)
	}
	return nil
}

// WriteFile writes m as PNG to path, creating missing parent directories.
func WriteFile(path string, m grid.Real, stretch bool) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("pixio: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncodePNG(f, m, stretch)
}
