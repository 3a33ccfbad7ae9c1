// Package pool provides the shared worker pool that runs the engine's row
// tasks. One process-wide pool sized to the host's CPU count is built
// lazily on first use and lives for the rest of the process; tests inject
// their own pools to pin the worker count.
package pool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines consuming submitted tasks.
// It has no teardown: the workers block on the task channel whenever the
// pool is idle and exit only when the process does.
type Pool struct {
	tasks     chan func()
	workers   int
	submitted atomic.Uint64
}

// New starts a pool with the given number of workers. Sizes below one are
// raised to one.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		tasks:   make(chan func()),
		workers: workers,
	}
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for task := range p.tasks {
		task()
	}
}

// Submit hands a task to the pool, blocking until a worker accepts it.
// Tasks must handle their own panics; a panic escaping a task kills the
// worker and, with it, the process.
func (p *Pool) Submit(task func()) {
	p.submitted.Add(1)
	p.tasks <- task
}

// Workers returns the pool's worker count.
func (p *Pool) Workers() int { return p.workers }

// Submitted returns the total number of tasks handed to the pool since it
// was created.
func (p *Pool) Submitted() uint64 { return p.submitted.Load() }

var (
	defaultPool *Pool
	defaultOnce sync.Once
)

// Default returns the process-wide pool, creating it on first call with
// one worker per available CPU.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = New(runtime.NumCPU())
	})
	return defaultPool
}
