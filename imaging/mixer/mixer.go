package mixer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"time"

	"github.com/cwbudde/algo-vecmath"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-specmix/dsp/buffer"
	"github.com/cwbudde/algo-specmix/dsp/fft2"
	"github.com/cwbudde/algo-specmix/imaging/grid"
	"github.com/cwbudde/algo-specmix/imaging/region"
	"github.com/cwbudde/algo-specmix/imaging/spectral"
)

// Slots is the fixed number of inputs to a mix.
const Slots = 4

// Default output range. The upper bound is 225, not 255.
const (
	DefaultClipMin = 0
	DefaultClipMax = 225
)

// magnitudePhaseGain scales every magnitude and phase contribution. The
// real/imaginary path is unscaled.
const magnitudePhaseGain = 2

// Errors returned by the mixer.
var (
	ErrInvalidComponentMix = errors.New("mixer: invalid component mix")
	ErrUnknownComponent    = errors.New("mixer: unknown component")
	ErrInvalidWeight       = errors.New("mixer: invalid weight")
	ErrBatchSize           = errors.New("mixer: batch must hold exactly four images")
	ErrShapeMismatch       = errors.New("mixer: shape mismatch")
	ErrInvalidClip         = errors.New("mixer: invalid clip range")
)

// Family is the component group a mix draws from.
type Family int

const (
	// FamilyRealImaginary mixes real and imaginary parts of the unshifted spectra.
	FamilyRealImaginary Family = iota + 1

	// FamilyMagnitudePhase mixes magnitudes and phases of the shifted spectra.
	FamilyMagnitudePhase
)

// String returns "real/imaginary" or "magnitude/phase".
func (f Family) String() string {
	switch f {
	case FamilyRealImaginary:
		return "real/imaginary"
	case FamilyMagnitudePhase:
		return "magnitude/phase"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// SelectFamily classifies four component selections. It returns
// FamilyRealImaginary when none of them is magnitude or phase,
// FamilyMagnitudePhase when none of them is real or imaginary, and
// ErrInvalidComponentMix when both groups are present.
func SelectFamily(components [Slots]spectral.Component) (Family, error) {
	var polar, cartesian int
	for i, c := range components {
		switch c {
		case spectral.Magnitude, spectral.Phase:
			polar++
		case spectral.Real, spectral.Imaginary:
			cartesian++
		default:
			return 0, fmt.Errorf("%w: slot %d has %v", ErrUnknownComponent, i, c)
		}
	}

	switch {
	case polar == 0:
		return FamilyRealImaginary, nil
	case cartesian == 0:
		return FamilyMagnitudePhase, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidComponentMix, components)
	}
}

// Slot is the weighted component selection for one input image.
type Slot struct {
	Weight    float64
	Component spectral.Component
}

// Option configures a [Mixer].
type Option func(*config)

type config struct {
	clipMin float64
	clipMax float64
	pool    *buffer.Pool
	logger  *zap.Logger
}

var defaultPool = buffer.NewPool()

// WithClip overrides the output range [lo, hi].
func WithClip(lo, hi float64) Option {
	return func(c *config) {
		c.clipMin, c.clipMax = lo, hi
	}
}

// WithPool sets the pool accumulators are drawn from. By default a
// package-wide pool is shared.
func WithPool(p *buffer.Pool) Option {
	return func(c *config) {
		if p != nil {
			c.pool = p
		}
	}
}

// WithLogger attaches a logger for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Mixer combines weighted spectrum components of four normalized images and
// reconstructs one output image. A Mixer never modifies its inputs.
type Mixer struct {
	slots [Slots]Slot
	batch *spectral.Batch
	cfg   config
}

// New creates a mixer over a normalized batch of exactly four images.
// Weights must be finite and non-negative; any normalization across slots
// is the caller's concern.
func New(slots [Slots]Slot, batch *spectral.Batch, opts ...Option) (*Mixer, error) {
	if batch == nil || batch.Len() != Slots {
		n := 0
		if batch != nil {
			n = batch.Len()
		}
		return nil, fmt.Errorf("%w: got %d", ErrBatchSize, n)
	}
	for i, s := range slots {
		if s.Weight < 0 || math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
			return nil, fmt.Errorf("%w: slot %d weight %v", ErrInvalidWeight, i, s.Weight)
		}
	}

	cfg := config{
		clipMin: DefaultClipMin,
		clipMax: DefaultClipMax,
		pool:    defaultPool,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !(cfg.clipMin <= cfg.clipMax) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidClip, cfg.clipMin, cfg.clipMax)
	}

	return &Mixer{slots: slots, batch: batch, cfg: cfg}, nil
}

// Components returns the four component selections.
func (m *Mixer) Components() [Slots]spectral.Component {
	var out [Slots]spectral.Component
	for i, s := range m.slots {
		out[i] = s.Component
	}
	return out
}

// Family classifies the mixer's component selections.
func (m *Mixer) Family() (Family, error) {
	return SelectFamily(m.Components())
}

// Reconstruct mixes the selected components inside the region described by
// mode and rect, inverse transforms the result and returns its magnitude
// clipped to the configured range.
//
// Magnitude/phase mixing works on the shifted spectra:
//
//	out = |IDFT2((ΣM·mask) · exp(i·(ΣP·mask)))|,  ΣM = Σ 2·w·|shift(F)|,  ΣP = Σ 2·w·arg(shift(F))
//
// Real/imaginary mixing works on the unshifted spectra:
//
//	out = |IDFT2(ΣR·mask + i·ΣI·mask)|,  ΣR = Σ w·Re(F),  ΣI = Σ w·Im(F)
//
// The mask is applied in the same coordinates for both families.
//
// ctx is checked before each slot is accumulated and before the inverse
// transform; on cancellation ctx.Err() is returned and no partial result.
func (m *Mixer) Reconstruct(ctx context.Context, mode region.CropMode, rect region.Rect) (grid.Real, error) {
	start := time.Now()

	comps, err := m.batch.Snapshot()
	if err != nil {
		return grid.Real{}, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}
	shape := m.batch.Shape()

	mask, err := region.Build(shape, mode, rect)
	if err != nil {
		return grid.Real{}, err
	}

	family, err := m.Family()
	if err != nil {
		return grid.Real{}, err
	}

	pool := m.cfg.pool
	first := pool.Get(shape)
	defer pool.Put(first)
	second := pool.Get(shape)
	defer pool.Put(second)
	scratch := pool.Get(shape)
	defer pool.Put(scratch)

	for i, slot := range m.slots {
		if err := ctx.Err(); err != nil {
			return grid.Real{}, err
		}

		raw, err := comps[i].Raw(slot.Component)
		if err != nil {
			return grid.Real{}, err
		}

		gain := slot.Weight
		acc := first
		switch slot.Component {
		case spectral.Magnitude:
			gain *= magnitudePhaseGain
		case spectral.Phase:
			gain *= magnitudePhaseGain
			acc = second
		case spectral.Imaginary:
			acc = second
		}

		vecmath.ScaleBlock(scratch.Samples(), raw.Data, gain)
		vecmath.AddBlockInPlace(acc.Samples(), scratch.Samples())
	}

	vecmath.MulBlockInPlace(first.Samples(), mask.Data)
	vecmath.MulBlockInPlace(second.Samples(), mask.Data)

	spec, err := grid.NewComplex(shape.Rows, shape.Cols)
	if err != nil {
		return grid.Real{}, err
	}
	a, b := first.Samples(), second.Samples()
	if family == FamilyMagnitudePhase {
		for i := range spec.Data {
			spec.Data[i] = complex(a[i], 0) * cmplx.Exp(complex(0, b[i]))
		}
	} else {
		for i := range spec.Data {
			spec.Data[i] = complex(a[i], b[i])
		}
	}

	if err := ctx.Err(); err != nil {
		return grid.Real{}, err
	}

	plan, err := fft2.NewPlan(shape.Rows, shape.Cols)
	if err != nil {
		return grid.Real{}, err
	}
	if err := plan.Inverse(spec, spec); err != nil {
		return grid.Real{}, fmt.Errorf("mixer: inverse transform: %w", err)
	}

	out, err := grid.NewReal(shape.Rows, shape.Cols)
	if err != nil {
		return grid.Real{}, err
	}
	for i, z := range spec.Data {
		out.Data[i] = clip(cmplx.Abs(z), m.cfg.clipMin, m.cfg.clipMax)
	}

	m.cfg.logger.Debug("mix reconstructed",
		zap.Stringer("family", family),
		zap.Stringer("shape", shape),
		zap.Stringer("crop", mode),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

func clip(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
