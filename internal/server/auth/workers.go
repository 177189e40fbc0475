package auth

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// WorkerPool bounds how many CPU-heavy jobs (password hashing) run at once,
// so a burst of logins cannot starve cheap requests of CPU.
type WorkerPool struct {
	sem *semaphore.Weighted
}

// NewWorkerPool returns a pool allowing size concurrent jobs (at least one).
func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	return &WorkerPool{sem: semaphore.NewWeighted(int64(size))}
}

// Do waits for a free slot and runs fn in the calling goroutine. It returns
// ctx.Err() if the context ends before a slot frees up; fn is not run then.
func (p *WorkerPool) Do(ctx context.Context, fn func()) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)
	fn()
	return nil
}
