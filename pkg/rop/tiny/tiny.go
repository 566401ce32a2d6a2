package tiny

import (
	"context"

	"github.com/ib-77/ropt/pkg/rop"
	"github.com/ib-77/ropt/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
}

func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Ok(v))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

func (c Chain[T]) value() T {
	v, _ := c.res.Peek()
	return v
}

// Then composes functions that already return rop.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.value())}
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsErr() || !until(c.ctx, c.value()) {
			return c
		}
	}
}

func (c Chain[T]) RepeatChainUntil(inC func(ctx context.Context, t T) Chain[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = inC(c.ctx, c.value())

		if c.res.IsErr() || !until(c.ctx, c.value()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsOk() && while(c.ctx, c.value()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T]) WhileChain(inC func(ctx context.Context, t T) Chain[T], while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsOk() && while(c.ctx, c.value()) {
		c = inC(c.ctx, c.value())
	}
	return c
}

// Or returns the first successful chain, or the first failed one.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}

	for _, ch := range alternatives {
		if ch.res.IsOk() {
			return ch
		}
	}
	return c
}

// And returns the first failed chain, or the last one when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsErr() {
			return ch
		}
		last = ch
	}
	return Chain[T]{ctx: c.ctx, res: last.res}
}

// ThenTry composes functions that return (T, error), like repository calls.
// A panic in try fails the chain.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}

	v := c.value()
	return Chain[T]{ctx: c.ctx, res: rop.From(func() (T, error) { return try(c.ctx, v) })}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}

	return Chain[T]{ctx: c.ctx, res: rop.Ok(onSuccess(c.ctx, c.value()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	v, err := c.res.Peek()
	if err != nil {
		if onFailure != nil {
			onFailure(c.ctx, err)
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, v)
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Finally(c.res,
		func(v T) T { return onSuccess(c.ctx, v) },
		func(err error) T { return onFailure(c.ctx, err) })
}

// To switches the chain to another element type.
func To[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) rop.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Switch(c.res, func(v T) rop.Result[U] { return onSuccess(c.ctx, v) })}
}

func MapTo[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.res, func(v T) U { return onSuccess(c.ctx, v) })}
}
