// Package worker runs independent tasks on a bounded number of goroutines.
//
// The suite collector uses it to evaluate a filter against every discovered test
// in parallel. Errors from all tasks are collected and returned together from Wait,
// sorted by message so that reports do not depend on scheduling.
package worker

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

// Task represents a unit of work that can be executed.
type Task func(ctx context.Context) error

// Pool manages concurrent task execution with a configurable number of workers.
type Pool struct {
	semaphore   chan struct{}
	allErrors   *errors.MultiError
	wg          sync.WaitGroup
	allErrorsMu sync.Mutex
	maxWorkers  int
	isStopping  atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified maximum number of concurrent workers.
// A non-positive value uses the number of CPUs.
func NewWorkerPool(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	return &Pool{
		maxWorkers: maxWorkers,
		semaphore:  make(chan struct{}, maxWorkers),
	}
}

// MaxWorkers returns the concurrency limit of the pool.
func (wp *Pool) MaxWorkers() int {
	return wp.maxWorkers
}

func (wp *Pool) appendError(err error) {
	if err == nil {
		return
	}

	wp.allErrorsMu.Lock()
	wp.allErrors = wp.allErrors.Append(err)
	wp.allErrorsMu.Unlock()
}

// Submit schedules task to run once a worker slot is free. Tasks submitted after Stop,
// or whose context is done before they get a slot, are not run; in the latter case the
// task is skipped silently.
func (wp *Pool) Submit(ctx context.Context, task Task) {
	if wp.isStopping.Load() {
		return
	}

	wp.wg.Add(1)

	go func() {
		defer wp.wg.Done()

		select {
		case wp.semaphore <- struct{}{}:
		case <-ctx.Done():
			return
		}

		defer func() { <-wp.semaphore }()

		if ctx.Err() != nil || wp.isStopping.Load() {
			return
		}

		wp.appendError(task(ctx))
	}()
}

// Wait blocks until all submitted tasks are completed and returns the collected errors.
func (wp *Pool) Wait() error {
	wp.wg.Wait()

	wp.allErrorsMu.Lock()
	defer wp.allErrorsMu.Unlock()

	wp.allErrors.Sort()

	return wp.allErrors.ErrorOrNil()
}

// Stop prevents tasks that have not started yet from running.
func (wp *Pool) Stop() {
	wp.isStopping.Store(true)
}

// IsStopping returns whether Stop was called.
func (wp *Pool) IsStopping() bool {
	return wp.isStopping.Load()
}
