package async

import (
	"context"

	"github.com/ib-77/ropt/pkg/rop"
)

// Capture waits for a computation that is already running and wraps its
// outcome: the value in Ok, an error or a panic in Err.
func Capture[T any](f *Future[T]) rop.Result[T] {
	return rop.Of(f.Wait())
}

// From starts fn and captures its outcome, the asynchronous form of rop.From.
func From[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) rop.Result[T] {
	return Capture(Go(ctx, fn))
}

// OptionFrom starts fn and maps a nil value to None, the asynchronous form of
// rop.OptionFrom. Failures are not captured: an error from fn is returned as
// is and a panic in fn is raised again in the waiting goroutine.
func OptionFrom[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (rop.Option[T], error) {
	f := Go(ctx, fn)
	<-f.Done()

	if f.recovered != nil {
		panic(f.recovered)
	}
	if f.err != nil {
		return rop.None[T](), f.err
	}
	if rop.IsNil(f.value) {
		return rop.None[T](), nil
	}
	return rop.Some(f.value), nil
}
