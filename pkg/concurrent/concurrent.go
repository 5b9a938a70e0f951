package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Concurrent runs action for each element in a separate goroutine.
// It waits for all goroutines to finish and returns the first error encountered.
func Concurrent[T any](items []T, action func(T) error) error {
	errGroup := errgroup.Group{}
	for _, value := range items {
		errGroup.Go(func() error {
			return action(value)
		})
	}
	return errGroup.Wait()
}

// ParallelMap applies mapFn to each element on at most workers goroutines,
// preserving order. It stops scheduling new elements once ctx is done or
// mapFn fails.
func ParallelMap[T any, R any](ctx context.Context, items []T, workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	errGroup, groupCtx := errgroup.WithContext(ctx)
	errGroup.SetLimit(max(workers, 1))

	for idx, val := range items {
		if groupCtx.Err() != nil {
			break
		}
		errGroup.Go(func() error {
			r, err := mapFn(groupCtx, val)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}
	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
