package mixjob

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Dispatcher keeps at most one current job. The zero value is ready for use.
type Dispatcher struct {
	// Deliver receives the outcome of every job that is still current when
	// it finishes. Calls are serialized and their generations strictly
	// increase. It runs on a dispatcher goroutine and must not call Wait.
	Deliver func(Outcome)

	// Logger receives debug output. Nil discards it.
	Logger *zap.Logger

	// deliverMu is held from the staleness check through Deliver, so an
	// older generation can never be delivered after a newer one.
	deliverMu sync.Mutex

	mu      sync.Mutex
	gen     uint64
	current *Job
	wg      conc.WaitGroup
}

// Submit starts req as the new current job and cancels the previous one.
func (d *Dispatcher) Submit(ctx context.Context, req Request) *Job {
	logger := d.logger()

	d.mu.Lock()
	if d.current != nil {
		d.current.Cancel()
	}
	d.gen++
	job := start(ctx, req, d.gen, logger)
	d.current = job
	d.mu.Unlock()

	d.wg.Go(func() {
		<-job.Done()
		d.finish(job, logger)
	})
	return job
}

func (d *Dispatcher) finish(job *Job, logger *zap.Logger) {
	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()

	d.mu.Lock()
	current := d.gen
	stale := job.gen != current
	if !stale {
		d.current = nil
	}
	d.mu.Unlock()

	if stale {
		logger.Debug("discarding stale mix result",
			zap.Uint64("generation", job.gen),
			zap.Uint64("current", current))
		return
	}
	if d.Deliver != nil {
		d.Deliver(job.Outcome())
	}
}

// Generation returns the generation of the most recent submission.
func (d *Dispatcher) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

// Cancel cancels the current job, if any. Its cancellation outcome is still
// delivered.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current != nil {
		d.current.Cancel()
	}
}

// Wait blocks until every submitted job has finished and been delivered or
// discarded.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
