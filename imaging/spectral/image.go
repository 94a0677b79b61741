package spectral

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-specmix/dsp/fft2"
	"github.com/cwbudde/algo-specmix/dsp/interp"
	"github.com/cwbudde/algo-specmix/dsp/spectrum"
	"github.com/cwbudde/algo-specmix/imaging/grid"
)

// Errors returned by spectral images and the normalizer.
var (
	ErrEmptyImage       = errors.New("spectral: empty image")
	ErrEmptyCollection  = errors.New("spectral: empty collection")
	ErrNilImage         = errors.New("spectral: nil image")
	ErrShapeMismatch    = errors.New("spectral: shape mismatch")
	ErrUnknownComponent = errors.New("spectral: unknown component")
)

// ID identifies an image for its lifetime. IDs are handed out by an
// [Allocator], never by the image itself.
type ID uint64

// Allocator hands out monotonically increasing image IDs. The zero value is
// ready for use and starts at 0. It is safe for concurrent use.
type Allocator struct {
	next atomic.Uint64
}

// Next returns a fresh ID.
func (a *Allocator) Next() ID {
	return ID(a.next.Add(1) - 1)
}

// Components is one consistent snapshot of an image and its transforms.
// All fields are derived from Pixels in a single computation and are
// replaced together; callers must not modify them.
type Components struct {
	Pixels           grid.Real
	Transform        grid.Complex // unshifted 2-D DFT of Pixels
	TransformShifted grid.Complex // Transform with DC at the center

	MagnitudeRaw grid.Real // |TransformShifted|
	PhaseRaw     grid.Real // arg(TransformShifted)
	RealRaw      grid.Real // Re(Transform), unshifted
	ImagRaw      grid.Real // Im(Transform), unshifted
}

// Shape returns the pixel shape the components were computed for.
func (c *Components) Shape() grid.Shape { return c.Pixels.Shape }

// Raw returns the raw reconstruction component selected by comp.
func (c *Components) Raw(comp Component) (grid.Real, error) {
	switch comp {
	case Magnitude:
		return c.MagnitudeRaw, nil
	case Phase:
		return c.PhaseRaw, nil
	case Real:
		return c.RealRaw, nil
	case Imaginary:
		return c.ImagRaw, nil
	default:
		return grid.Real{}, fmt.Errorf("%w: %d", ErrUnknownComponent, int(comp))
	}
}

// Display returns the view of comp as rendered for inspection: log(|X|+1)
// for magnitude, arg(X) for phase, log(Re X+1) and log(Im X+1) for the
// Cartesian parts, all taken from TransformShifted.
func (c *Components) Display(comp Component) (grid.Real, error) {
	bins := c.TransformShifted.Data
	var data []float64
	switch comp {
	case Magnitude:
		data = spectrum.LogMagnitude(bins)
	case Phase:
		data = spectrum.Phase(bins)
	case Real:
		data = spectrum.LogReal(bins)
	case Imaginary:
		data = spectrum.LogImag(bins)
	default:
		return grid.Real{}, fmt.Errorf("%w: %d", ErrUnknownComponent, int(comp))
	}
	return grid.Real{Shape: c.TransformShifted.Shape, Data: data}, nil
}

// computeComponents runs the forward transform and derives every raw
// component from it.
func computeComponents(pixels grid.Real) (*Components, error) {
	if !pixels.Valid() || len(pixels.Data) != pixels.Len() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyImage, pixels.Shape)
	}

	transform, err := fft2.ForwardReal(pixels)
	if err != nil {
		return nil, fmt.Errorf("spectral: forward transform: %w", err)
	}
	shifted := fft2.Shift(transform)
	s := pixels.Shape

	return &Components{
		Pixels:           pixels,
		Transform:        transform,
		TransformShifted: shifted,
		MagnitudeRaw:     grid.Real{Shape: s, Data: spectrum.Magnitude(shifted.Data)},
		PhaseRaw:         grid.Real{Shape: s, Data: spectrum.Phase(shifted.Data)},
		RealRaw:          grid.Real{Shape: s, Data: spectrum.Real(transform.Data)},
		ImagRaw:          grid.Real{Shape: s, Data: spectrum.Imag(transform.Data)},
	}, nil
}

// Option configures an [Image].
type Option func(*Image)

// WithResizeMethod sets the kernel used by [Image.Resize]. The default is
// interp.MethodLinear.
func WithResizeMethod(m interp.Method) Option {
	return func(im *Image) { im.method = m }
}

// Image owns a grayscale pixel matrix and its frequency-domain
// representation.
//
// The transform and every raw component are recomputed together whenever the
// pixels change, and readers always observe one consistent [Components]
// snapshot. Image is safe for concurrent use.
type Image struct {
	id       ID
	method   interp.Method
	original grid.Real

	mu    sync.RWMutex
	state *Components
}

// New creates an image from pixels and computes its transform. pixels is
// copied; the caller keeps ownership of its argument.
func New(id ID, pixels grid.Real, opts ...Option) (*Image, error) {
	owned := pixels.Clone()
	state, err := computeComponents(owned)
	if err != nil {
		return nil, err
	}

	im := &Image{id: id, original: pixels.Clone(), state: state}
	for _, opt := range opts {
		if opt != nil {
			opt(im)
		}
	}
	return im, nil
}

// ID returns the identity assigned at construction.
func (im *Image) ID() ID { return im.id }

// Shape returns the current pixel shape.
func (im *Image) Shape() grid.Shape {
	return im.Components().Shape()
}

// Pixels returns the current pixel matrix. Callers must not modify it.
func (im *Image) Pixels() grid.Real {
	return im.Components().Pixels
}

// Original returns the pixels as they were at construction, before any
// resize.
func (im *Image) Original() grid.Real { return im.original }

// Components returns the current consistent snapshot.
func (im *Image) Components() *Components {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.state
}

// ComputeTransform recomputes the transform and raw components from the
// current pixels.
func (im *Image) ComputeTransform() error {
	im.mu.Lock()
	defer im.mu.Unlock()

	state, err := computeComponents(im.state.Pixels)
	if err != nil {
		return err
	}
	im.state = state
	return nil
}

// Resize resamples the pixels to rows x cols and recomputes the transform in
// the same step. Resizing to the current shape leaves the image untouched.
func (im *Image) Resize(rows, cols int) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	cur := im.state.Pixels
	if cur.Rows == rows && cur.Cols == cols {
		return nil
	}

	resized, err := interp.Resize(cur, rows, cols, im.method)
	if err != nil {
		return fmt.Errorf("spectral: resize image %d: %w", im.id, err)
	}
	state, err := computeComponents(resized)
	if err != nil {
		return err
	}
	im.state = state
	return nil
}
