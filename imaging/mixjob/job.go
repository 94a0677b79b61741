package mixjob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-specmix/imaging/grid"
	"github.com/cwbudde/algo-specmix/imaging/mixer"
	"github.com/cwbudde/algo-specmix/imaging/region"
	"github.com/cwbudde/algo-specmix/imaging/spectral"
)

// ErrPanic wraps a panic recovered from a reconstruction.
var ErrPanic = errors.New("mixjob: reconstruction panicked")

// beforeReconstruct is called on the job goroutine before any work starts.
var beforeReconstruct = func(ctx context.Context, gen uint64) {}

// Request is a fully formed mix request.
type Request struct {
	Weights    [mixer.Slots]float64
	Components [mixer.Slots]spectral.Component
	Batch      *spectral.Batch
	Mode       region.CropMode
	Rect       region.Rect

	// Options are passed to mixer.New.
	Options []mixer.Option
}

// Slots pairs weights with component selections.
func (r Request) Slots() [mixer.Slots]mixer.Slot {
	var s [mixer.Slots]mixer.Slot
	for i := range s {
		s[i] = mixer.Slot{Weight: r.Weights[i], Component: r.Components[i]}
	}
	return s
}

// Outcome is the single result of a job. Exactly one of Result, Err or
// Cancelled is meaningful.
type Outcome struct {
	Generation uint64
	Result     grid.Real
	Err        error
	Cancelled  bool
	Duration   time.Duration
}

// Job is one in-flight reconstruction.
type Job struct {
	gen     uint64
	cancel  context.CancelFunc
	done    chan struct{}
	outcome Outcome
}

// Start runs req on a new goroutine. The job is cancelled when ctx is done
// or Cancel is called. A nil logger discards output.
func Start(ctx context.Context, req Request, logger *zap.Logger) *Job {
	return start(ctx, req, 0, logger)
}

func start(ctx context.Context, req Request, gen uint64, logger *zap.Logger) *Job {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)
	j := &Job{
		gen:    gen,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go j.run(ctx, req, logger.With(zap.Uint64("generation", gen)))
	return j
}

func (j *Job) run(ctx context.Context, req Request, logger *zap.Logger) {
	defer close(j.done)
	defer j.cancel()

	began := time.Now()
	var (
		result grid.Real
		err    error
	)
	rec := panics.Try(func() {
		beforeReconstruct(ctx, j.gen)
		result, err = reconstruct(ctx, req)
	})
	if rec != nil {
		err = fmt.Errorf("%w: %w", ErrPanic, rec.AsError())
		logger.Error("mix job panicked", zap.Error(err))
	}

	out := Outcome{Generation: j.gen, Duration: time.Since(began)}
	switch {
	case ctx.Err() != nil:
		// Cancellation wins over a result that raced to completion.
		out.Cancelled = true
		out.Err = ctx.Err()
		logger.Debug("mix job cancelled", zap.Duration("duration", out.Duration))
	case err != nil:
		out.Err = err
		logger.Debug("mix job failed", zap.Error(err))
	default:
		out.Result = result
		logger.Debug("mix job finished",
			zap.Stringer("shape", result.Shape),
			zap.Duration("duration", out.Duration))
	}
	j.outcome = out
}

func reconstruct(ctx context.Context, req Request) (grid.Real, error) {
	m, err := mixer.New(req.Slots(), req.Batch, req.Options...)
	if err != nil {
		return grid.Real{}, err
	}
	return m.Reconstruct(ctx, req.Mode, req.Rect)
}

// Generation returns the generation the job was started with.
func (j *Job) Generation() uint64 { return j.gen }

// Done is closed once the outcome is available.
func (j *Job) Done() <-chan struct{} { return j.done }

// Cancel requests cancellation. It is safe to call more than once and after
// completion.
func (j *Job) Cancel() { j.cancel() }

// Outcome blocks until the job finishes and returns its outcome.
func (j *Job) Outcome() Outcome {
	<-j.done
	return j.outcome
}

// Wait blocks until the job finishes or ctx is done.
func (j *Job) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-j.done:
		return j.outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}
