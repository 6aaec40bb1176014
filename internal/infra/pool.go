package infra

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// WorkerPool bounds the number of blocking backend calls running at once.
// Each submitted call runs on its own goroutine; the pool only limits
// concurrency, it does not queue, retry, or deduplicate work.
type WorkerPool struct {
	sem *semaphore.Weighted
}

// NewWorkerPool creates a pool allowing up to size concurrent calls.
// A size of zero or less falls back to a single worker.
func NewWorkerPool(size int) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	return &WorkerPool{sem: semaphore.NewWeighted(int64(size))}
}

// Do runs fn off the caller's goroutine and waits for its single result.
// Acquiring a worker slot respects ctx; once fn is running it is awaited to
// completion even if ctx expires, so a slot is never leaked.
func (p *WorkerPool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		defer p.sem.Release(1)
		done <- fn()
	}()

	return <-done
}
