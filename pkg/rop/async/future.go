package async

import (
	"context"
	"sync"

	"github.com/ib-77/ropt/pkg/rop"
)

// Future is the read-only side of a computation that is already running.
// It settles exactly once.
type Future[T any] struct {
	value     T
	err       error
	recovered any
	once      sync.Once
	done      chan struct{}
}

// Resolver is the writable side paired with a Future. Only the first call to
// Resolve has an effect.
type Resolver[T any] struct {
	future *Future[T]
}

// NewFuture binds a Future to the Resolver that settles it.
func NewFuture[T any]() (*Future[T], *Resolver[T]) {
	f := &Future[T]{done: make(chan struct{})}
	return f, &Resolver[T]{future: f}
}

// Go starts fn in its own goroutine. ctx is handed to fn untouched; the
// Future settles when fn returns or panics.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f, r := NewFuture[T]()

	go func() {
		defer func() {
			if p := recover(); p != nil {
				r.panicked(p)
			}
		}()
		r.Resolve(fn(ctx))
	}()

	return f
}

func (r *Resolver[T]) Resolve(value T, err error) {
	r.future.once.Do(func() {
		r.future.value = value
		r.future.err = err
		close(r.future.done)
	})
}

func (r *Resolver[T]) panicked(p any) {
	r.future.once.Do(func() {
		r.future.recovered = p
		close(r.future.done)
	})
}

// Done is closed once the Future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the Future settles. There is no way to stop waiting
// early: cancelling is up to the computation itself. A panic in the
// computation is returned as an error (see rop.AsError).
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	if f.recovered != nil {
		var zero T
		return zero, rop.AsError(f.recovered)
	}
	return f.value, f.err
}
