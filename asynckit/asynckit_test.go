package asynckit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.llib.dev/iterkit/asynckit"
)

func valueTask[T any](v T) asynckit.Task[T] {
	return func(ctx context.Context) (T, error) {
		return v, nil
	}
}

// blockingTask parks until its context is cancelled.
func blockingTask[T any](unblocked chan<- struct{}) asynckit.Task[T] {
	return func(ctx context.Context) (T, error) {
		var zero T
		<-ctx.Done()
		if unblocked != nil {
			close(unblocked)
		}
		return zero, ctx.Err()
	}
}

func TestAll(t *testing.T) {
	ctx := context.Background()

	t.Run("results are collected in task order", func(t *testing.T) {
		vs, err := asynckit.All(ctx,
			valueTask(1),
			valueTask(2),
			valueTask(3),
		)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, vs)
	})

	t.Run("the order follows the tasks, not their completion", func(t *testing.T) {
		release := make(chan struct{})
		vs, err := asynckit.All(ctx,
			func(ctx context.Context) (string, error) {
				<-release // the first task settles last
				return "slow", nil
			},
			func(ctx context.Context) (string, error) {
				close(release)
				return "fast", nil
			},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"slow", "fast"}, vs)
	})

	t.Run("the first failure settles the whole aggregate", func(t *testing.T) {
		expErr := errors.New("boom")
		unblocked := make(chan struct{})
		vs, err := asynckit.All(ctx,
			blockingTask[int](unblocked),
			func(ctx context.Context) (int, error) {
				return 0, expErr
			},
		)
		require.ErrorIs(t, err, expErr)
		assert.Nil(t, vs)
		select {
		case <-unblocked:
		default:
			t.Fatal("expected that the failure cancels the remaining tasks")
		}
	})

	t.Run("without tasks it settles with an empty result", func(t *testing.T) {
		vs, err := asynckit.All[int](ctx)
		require.NoError(t, err)
		assert.Empty(t, vs)
	})

	t.Run("a panicking task settles the aggregate as a failure", func(t *testing.T) {
		_, err := asynckit.All(ctx,
			valueTask(1),
			func(ctx context.Context) (int, error) {
				panic("boom")
			},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("an already cancelled context fails the tasks that honour it", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := asynckit.All(cctx, func(ctx context.Context) (int, error) {
			return 0, ctx.Err()
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRace(t *testing.T) {
	ctx := context.Background()

	t.Run("the first settled value wins", func(t *testing.T) {
		v, err := asynckit.Race(ctx,
			blockingTask[string](nil),
			valueTask("winner"),
		)
		require.NoError(t, err)
		assert.Equal(t, "winner", v)
	})

	t.Run("the first settled failure wins too", func(t *testing.T) {
		expErr := errors.New("boom")
		_, err := asynckit.Race(ctx,
			blockingTask[int](nil),
			func(ctx context.Context) (int, error) {
				return 0, expErr
			},
		)
		require.ErrorIs(t, err, expErr)
	})

	t.Run("the losers' context is cancelled", func(t *testing.T) {
		unblocked := make(chan struct{})
		v, err := asynckit.Race(ctx,
			blockingTask[int](unblocked),
			valueTask(42),
		)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		<-unblocked // returns only once the loser observed the cancellation
	})

	t.Run("without tasks it has nothing to settle with", func(t *testing.T) {
		_, err := asynckit.Race[int](ctx)
		require.ErrorIs(t, err, asynckit.ErrNoTask)
	})

	t.Run("a panicking task settles as a failure when it is first", func(t *testing.T) {
		_, err := asynckit.Race(ctx,
			blockingTask[int](nil),
			func(ctx context.Context) (int, error) {
				panic("boom")
			},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("a single task race settles with that task", func(t *testing.T) {
		v, err := asynckit.Race(ctx, valueTask("only"))
		require.NoError(t, err)
		assert.Equal(t, "only", v)
	})
}
