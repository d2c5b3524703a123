// Package sched provides a priority task runner.
//
// A Runner holds named tasks keyed by an integer priority and executes them
// highest-priority first with a configurable concurrency limit. Queued tasks
// can be reprioritized or cancelled at any time before they are dispatched,
// and running tasks may submit new work back into the queue.
//
// Basic usage:
//
//	r := sched.New(sched.WithMaxConcurrency(4))
//
//	r.Submit("compact", 10, func(ctx context.Context) error {
//		return compact(ctx)
//	})
//	r.Submit("flush", 20, func(ctx context.Context) error {
//		return flush(ctx)
//	})
//
//	if err := r.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package sched
