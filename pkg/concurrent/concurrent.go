package concurrent

import (
	"context"

	"github.com/clowdy/clowdy/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// Concurrent runs action for each element of the iterator in its own goroutine
// and waits for all of them. The context passed to action is cancelled as soon
// as one action fails; the first error is returned.
func Concurrent[T any](ctx context.Context, i *sequence.Iterator[T], action func(context.Context, T) error) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for value := range i.Seq() {
		group.Go(func() error {
			return action(groupCtx, value)
		})
	}
	return group.Wait()
}

// Limited is Concurrent with at most limit goroutines in flight. A limit below
// one means no limit.
func Limited[T any](ctx context.Context, i *sequence.Iterator[T], limit int, action func(context.Context, T) error) error {
	group, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}
	for value := range i.Seq() {
		group.Go(func() error {
			return action(groupCtx, value)
		})
	}
	return group.Wait()
}
