package pixio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/cwbudde/algo-specmix/imaging/grid"
	"github.com/cwbudde/algo-specmix/internal/testutil"
)

func colorImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(2, 0, color.NRGBA{B: 255, A: 255})
	img.Set(0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	img.Set(2, 1, color.NRGBA{R: 200, G: 40, B: 10, A: 128})
	return img
}

func TestGrayscaleLumaWeights(t *testing.T) {
	got, err := Grayscale(colorImage())
	if err != nil {
		t.Fatalf("Grayscale: %v", err)
	}
	want, _ := grid.RealFromRows([][]float64{
		{0.299 * 255, 0.587 * 255, 0.114 * 255},
		{255, 100, 0.299*200 + 0.587*40 + 0.114*10},
	})
	testutil.RequireMatrixNearlyEqual(t, got, want, 1e-9)
}

func TestGrayscaleOffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(5, 7, 8, 9))
	img.SetGray(5, 7, color.Gray{Y: 10})
	img.SetGray(7, 8, color.Gray{Y: 200})

	got, err := Grayscale(img)
	if err != nil {
		t.Fatalf("Grayscale: %v", err)
	}
	if got.Shape != (grid.Shape{Rows: 2, Cols: 3}) {
		t.Fatalf("shape = %s, want 2x3", got.Shape)
	}
	if got.At(0, 0) != 10 || got.At(1, 2) != 200 {
		t.Fatalf("corners = %v, %v; want 10, 200", got.At(0, 0), got.At(1, 2))
	}
}

func TestGrayscaleEmpty(t *testing.T) {
	if _, err := Grayscale(image.NewGray(image.Rectangle{})); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("err = %v, want ErrEmptyImage", err)
	}
}

func TestDecodeFormats(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 3))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 20)
	}

	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) },
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, format, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if format != name {
				t.Fatalf("format = %q, want %q", format, name)
			}
			for i, v := range got.Data {
				if math.Abs(v-float64(src.Pix[i])) > 1e-9 {
					t.Fatalf("sample %d = %v, want %d", i, v, src.Pix[i])
				}
			}
		})
	}
}

func TestDecodeJPEGIsRegistered(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, colorImage(), nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, format, err := Decode(&buf)
	if err != nil || format != "jpeg" {
		t.Fatalf("Decode = %v, %q", err, format)
	}
	testutil.RequireWithin(t, got.Data, 0, 255)
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatal("expected an error")
	}
}

func TestGray8Clamps(t *testing.T) {
	m, _ := grid.RealFromRows([][]float64{{-4, 0.4, 0.6, 254.6, 300, math.NaN()}})
	got := Gray8(m)
	want := []uint8{0, 0, 1, 255, 255, 0}
	if !bytes.Equal(got.Pix, want) {
		t.Fatalf("Pix = %v, want %v", got.Pix, want)
	}
}

func TestStretch(t *testing.T) {
	m, _ := grid.RealFromRows([][]float64{{-1, 0, 1}, {math.Inf(1), math.NaN(), 0.5}})
	got := Stretch(m)
	want, _ := grid.RealFromRows([][]float64{{0, 127.5, 255}, {0, 0, 191.25}})
	testutil.RequireMatrixNearlyEqual(t, got, want, 1e-9)

	flat := Stretch(testutil.Constant(2, 2, 7))
	testutil.RequireMatrixNearlyEqual(t, flat, testutil.Constant(2, 2, 0), 0)
}

func TestWriteReadRoundTrip(t *testing.T) {
	m := testutil.Gradient(5, 7, 225)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WriteFile(path, m, false); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	testutil.RequireMatrixNearlyEqual(t, got, m, 0.5)
}

func TestWriteFileCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectra", "nested", "out.png")
	if err := WriteFile(path, testutil.Constant(3, 4, 90), true); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output not written: %v", err)
	}
}

func TestEncodePNGEmpty(t *testing.T) {
	if err := EncodePNG(&bytes.Buffer{}, grid.Real{}, false); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("err = %v, want ErrEmptyImage", err)
	}
}
