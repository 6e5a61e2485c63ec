package ws

import (
	"context"
	"iter"
)

// dispatcher binds the methods of one hub to a service.
type dispatcher interface {
	invoke(ctx context.Context, c *Conn, target string, args arguments) (any, error)
	stream(ctx context.Context, c *Conn, target string, args arguments) (iter.Seq2[any, error], error)

	// close runs once after the connection is gone.
	close(ctx context.Context, c *Conn)
}

func anySeq[T any](seq iter.Seq2[T, error]) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for v, err := range seq {
			if !yield(v, err) {
				return
			}
		}
	}
}
