package sched

import (
	"context"
	"errors"
	"sync"

	"github.com/wilderfield/prioritymap"
)

// ErrNilTask is returned when a nil function is submitted.
var ErrNilTask = errors.New("sched: task must not be nil")

// Task is a unit of work executed by a Runner.
type Task func(ctx context.Context) error

// options defines all configuration options for a Runner.
type options struct {
	maxConcurrency int // Maximum number of tasks running at once
	onError        func(name string, err error)
}

// Option is a function that configures the runner options.
type Option func(*options)

// WithMaxConcurrency sets the maximum number of concurrently running tasks.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		o.maxConcurrency = n
	}
}

// WithOnError sets a callback invoked with every task that returns an
// error. Task errors do not stop the run.
func WithOnError(fn func(name string, err error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		maxConcurrency: 10,
	}
}

// Runner executes named tasks in priority order, highest first. Tasks may
// be submitted, bumped, or cancelled from any goroutine, including from
// running tasks; a mutex serializes every touch of the underlying priority
// map.
type Runner struct {
	mu             sync.Mutex
	queue          *prioritymap.Map[string, int64]
	tasks          map[string]Task
	maxConcurrency int
	onError        func(name string, err error)
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{
		queue:          prioritymap.New[string, int64](),
		tasks:          make(map[string]Task),
		maxConcurrency: o.maxConcurrency,
		onError:        o.onError,
	}
}

// Submit queues fn under name at the given priority. Resubmitting a queued
// name replaces both its task and its priority.
func (r *Runner) Submit(name string, priority int64, fn Task) error {
	if fn == nil {
		return ErrNilTask
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[name] = fn
	r.queue.Set(name, priority)
	return nil
}

// Bump raises a queued task's priority by one, reporting whether the task
// was queued.
func (r *Runner) Bump(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.queue.Contains(name) {
		return false
	}
	r.queue.Increment(name)
	return true
}

// Cancel removes a queued task, reporting whether it was queued. Tasks
// already dispatched are not interrupted.
func (r *Runner) Cancel(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.queue.Delete(name) {
		return false
	}
	delete(r.tasks, name)
	return true
}

// Len returns the number of queued tasks.
func (r *Runner) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.queue.Len()
}

// next pops the highest-priority queued task.
func (r *Runner) next() (string, Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, _, ok := r.queue.Pop()
	if !ok {
		return "", nil, false
	}
	fn := r.tasks[name]
	delete(r.tasks, name)
	return name, fn, true
}

// Run drains the queue in priority order, executing up to the configured
// number of tasks concurrently. It returns once the queue is empty and all
// dispatched tasks have finished, or with ctx's error on cancellation, in
// which case undispatched tasks stay queued for a later run. Task errors go
// to the OnError callback and do not stop the run.
func (r *Runner) Run(ctx context.Context) error {
	sem := make(chan struct{}, r.maxConcurrency)
	var wg sync.WaitGroup

	for {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		}

		// A slot freed by a worker that saw cancellation can win the
		// select above; re-check before popping so a cancelled run never
		// dequeues further work.
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		default:
		}

		name, fn, ok := r.next()
		if !ok {
			<-sem
			wg.Wait()
			// Finished tasks may have submitted more work; only stop once
			// the queue is empty with no workers left.
			if r.Len() == 0 {
				return nil
			}
			continue
		}

		wg.Add(1)
		go func(name string, fn Task) {
			defer func() {
				<-sem
				wg.Done()
			}()

			if err := fn(ctx); err != nil && r.onError != nil {
				r.onError(name, err)
			}
		}(name, fn)
	}
}
