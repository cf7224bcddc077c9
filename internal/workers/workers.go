package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers     []Worker
	concurrency int
}

// New builds a batch. A concurrency below one runs the workers one at a
// time.
func New(concurrency int, workers ...Worker) *Workers {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Workers{workers: workers, concurrency: concurrency}
}

// Add appends w to the batch. It must not be called during Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Len returns the number of workers in the batch.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker, at most concurrency at a time, and waits for
// them. It returns the first error; workers not yet started are skipped.
// A cancelled ctx is reported as its error.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for _, worker := range w.workers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
