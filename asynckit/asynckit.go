// Package asynckit provides aggregate combinators over independent asynchronous computations.
package asynckit

import (
	"context"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/errgroup"

	"go.llib.dev/iterkit/internal/errorkitlite"
)

// Task is a unit of asynchronous computation that produces a value.
// A task is expected to honour context cancellation.
type Task[T any] func(ctx context.Context) (T, error)

// ErrNoTask is returned by Race when it has nothing to wait on.
const ErrNoTask errorkitlite.Error = "asynckit: no task was given"

// All runs every task concurrently and collects their results in task order.
// The first failure cancels the remaining tasks' context and becomes the returned error;
// the abandoned tasks' results are discarded, though All still waits for them to return.
// A panicking task is reported as a failure instead of crashing the process.
func All[T any](ctx context.Context, tasks ...Task[T]) ([]T, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]T, len(tasks))
	for i, task := range tasks {
		g.Go(func() error {
			var err error
			if r := panics.Try(func() { results[i], err = task(ctx) }); r != nil {
				return r.AsError()
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type outcome[T any] struct {
	val T
	err error
}

// Race runs every task concurrently and settles with the first task to settle,
// regardless of whether that outcome is a value or a failure.
// The losers' context is cancelled, and their outcomes are discarded in the background.
func Race[T any](ctx context.Context, tasks ...Task[T]) (T, error) {
	if len(tasks) == 0 {
		var zero T
		return zero, ErrNoTask
	}
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan outcome[T], len(tasks))
	var wg conc.WaitGroup
	for _, task := range tasks {
		wg.Go(func() {
			var o outcome[T]
			if r := panics.Try(func() { o.val, o.err = task(ctx) }); r != nil {
				o.err = r.AsError()
			}
			out <- o
		})
	}
	first := <-out
	cancel()
	go func() {
		defer cancel()
		_ = wg.WaitAndRecover()
	}()
	return first.val, first.err
}
