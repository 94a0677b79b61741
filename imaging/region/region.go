package region

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-specmix/imaging/grid"
)

// ErrUnknownCropMode is returned when a crop mode name cannot be parsed.
var ErrUnknownCropMode = errors.New("region: unknown crop mode")

// CropMode selects how a rectangle restricts the spectrum.
type CropMode int

const (
	// None applies no masking; the rectangle is ignored.
	None CropMode = iota

	// Inner keeps only the frequencies inside the rectangle.
	Inner

	// Outer suppresses the frequencies inside the rectangle.
	Outer
)

var modeNames = [...]string{"none", "inner", "outer"}

// String returns the lower-case mode name.
func (m CropMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("CropMode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseCropMode maps "none", "inner" or "outer" to a CropMode. The empty
// string parses as None.
func ParseCropMode(s string) (CropMode, error) {
	if s == "" {
		return None, nil
	}
	for i, name := range modeNames {
		if s == name {
			return CropMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCropMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m CropMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *CropMode) UnmarshalText(text []byte) error {
	v, err := ParseCropMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Rect is an inclusive pixel rectangle: columns X1..X2 and rows Y1..Y2.
// X1 <= X2 and Y1 <= Y2 are expected but not enforced.
type Rect struct {
	X1, X2 int
	Y1, Y2 int
}

// RectFromFloat converts a region given as origin (x, y) and size
// (width, height) into a Rect, truncating each bound toward zero:
// (X1, X2, Y1, Y2) = (x, x+width, y, y+height).
func RectFromFloat(x, y, width, height float64) Rect {
	return Rect{
		X1: truncate(x),
		X2: truncate(x + width),
		Y1: truncate(y),
		Y2: truncate(y + height),
	}
}

func truncate(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

// clip intersects the half-open span [lo, hi+1) with [0, n) and returns the
// resulting half-open bounds. An empty intersection yields start >= end.
func clip(lo, hi, n int) (start, end int) {
	start = max(lo, 0)
	end = min(hi+1, n)
	if hi == math.MaxInt {
		end = n
	}
	return start, end
}

// Build returns a mask of the given shape holding 1 where frequencies are
// kept and 0 where they are suppressed.
//
// Rectangles that extend past the matrix are silently intersected with it;
// an empty intersection makes Inner all zeros and Outer all ones.
func Build(shape grid.Shape, mode CropMode, rect Rect) (grid.Real, error) {
	mask, err := grid.NewReal(shape.Rows, shape.Cols)
	if err != nil {
		return grid.Real{}, err
	}

	var inside float64
	switch mode {
	case None:
		mask.Fill(1)
		return mask, nil
	case Inner:
		inside = 1
	case Outer:
		mask.Fill(1)
		inside = 0
	default:
		return grid.Real{}, fmt.Errorf("%w: %d", ErrUnknownCropMode, int(mode))
	}

	y0, y1 := clip(rect.Y1, rect.Y2, shape.Rows)
	x0, x1 := clip(rect.X1, rect.X2, shape.Cols)
	for y := y0; y < y1; y++ {
		row := mask.Row(y)
		for x := x0; x < x1; x++ {
			row[x] = inside
		}
	}
	return mask, nil
}
