// Package workers runs batches of independent jobs with bounded
// concurrency.
//
// It defines the Worker interface and a Workers aggregate that runs every
// worker of a batch and stops the batch at the first failure.
package workers

import "context"

// Worker is one unit of work of a batch.
//
// Run must return promptly once ctx is cancelled: the batch cancels it when
// a sibling worker fails.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
