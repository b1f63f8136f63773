package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// PartialResult holds a value or the error that prevented it.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// ParallelPartialLimit runs fns with at most limit in flight and collects
// every result. A failing fn does not cancel the others.
func ParallelPartialLimit[T any](
	ctx context.Context,
	limit int,
	fns ...func(context.Context) (T, error),
) []PartialResult[T] {
	results := make([]PartialResult[T], len(fns))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, fn := range fns {
		g.Go(func() error {
			value, err := fn(ctx)
			results[i] = PartialResult[T]{Value: value, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}

// FanOut distributes items across a fixed number of workers and stops at the
// first error, cancelling the remaining work.
func FanOut[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	itemChan := make(chan T)

	for range max(workers, 1) {
		g.Go(func() error {
			for item := range itemChan {
				if err := fn(ctx, item); err != nil {
					return err
				}
			}

			return nil
		})
	}

	g.Go(func() error {
		defer close(itemChan)

		for _, item := range items {
			select {
			case itemChan <- item:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("fan out failed: %w", err)
	}

	return nil
}
