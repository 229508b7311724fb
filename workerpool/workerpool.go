// SPDX-License-Identifier: MIT

// Package workerpool runs batches of fallible tasks on a fixed set of
// long-lived goroutines. The tiled multiply keeps one Pool for a whole
// benchmark and opens a Batch per barrier:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	b := pool.NewBatch()
//	for k := range g {
//	    b.Go(func() error { return partial(k) })
//	}
//	if err := b.Wait(); err != nil {
//	    // first task error (or recovered panic); later tasks were skipped
//	}
//
// A task must not wait on another batch of the same pool: with every worker
// blocked in Wait nothing is left to run the inner batch.
package workerpool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrTaskPanic wraps the value recovered from a panicking task.
var ErrTaskPanic = errors.New("workerpool: task panicked")

// Pool owns size worker goroutines fed from one FIFO queue.
type Pool struct {
	size   int
	queue  chan job
	mu     sync.RWMutex // guards closed and every send on queue
	closed bool
	exited sync.WaitGroup
}

// job is a task together with the batch it reports to.
type job struct {
	batch *Batch
	fn    func() error
}

// New starts a pool of size workers; size <= 0 means GOMAXPROCS.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	p := &Pool{size: size, queue: make(chan job, size)}
	p.exited.Add(size)
	for range size {
		go p.serve()
	}

	return p
}

func (p *Pool) serve() {
	defer p.exited.Done()
	for j := range p.queue {
		j.batch.exec(j.fn)
	}
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Close stops accepting tasks, lets the queued ones finish and waits for the
// workers to exit. It is idempotent and may race with Batch.Go: tasks that
// lose the race run on the submitting goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()
	p.exited.Wait()
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.closed
}

// submit queues j and reports false if the pool no longer accepts work.
// It blocks while the queue is full.
func (p *Pool) submit(j job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	p.queue <- j

	return true
}

// Batch is a counted barrier over tasks submitted to one Pool. The first
// failure wins: it is returned by Wait, closes Aborted, and every task of the
// batch that has not started yet is skipped.
type Batch struct {
	pool    *Pool
	pending sync.WaitGroup
	failed  atomic.Bool
	once    sync.Once
	aborted chan struct{}
	err     error
}

// NewBatch opens an empty batch on p.
func (p *Pool) NewBatch() *Batch {
	return &Batch{pool: p, aborted: make(chan struct{})}
}

// Go schedules fn. On a closed pool fn runs on the calling goroutine.
func (b *Batch) Go(fn func() error) {
	b.pending.Add(1)
	if !b.pool.submit(job{batch: b, fn: fn}) {
		b.exec(fn)
	}
}

// Wait blocks until every task submitted so far has finished or been
// skipped, then returns the first failure.
func (b *Batch) Wait() error {
	b.pending.Wait()

	return b.err
}

// Aborted is closed as soon as a task of the batch fails.
func (b *Batch) Aborted() <-chan struct{} { return b.aborted }

func (b *Batch) exec(fn func() error) {
	defer b.pending.Done()
	if b.failed.Load() {
		return
	}
	if err := Safe(fn); err != nil {
		b.once.Do(func() {
			b.err = err
			b.failed.Store(true)
			close(b.aborted)
		})
	}
}

// Safe runs fn and converts a panic into an error wrapping ErrTaskPanic.
func Safe(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
		}
	}()

	return fn()
}
