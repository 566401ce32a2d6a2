package rop

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// Option holds a value or nothing. Absence is a tag of its own, so
// Some(nil) and None are different options. The zero Option is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Expect returns the value, panicking with a *ContractError carrying msg on None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(newContractError(msg, ErrNoneUnwrapped, nil))
	}
	return o.value
}

func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(newContractError(ErrNoneUnwrapped.Error(), ErrNoneUnwrapped, nil))
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.some {
		return fallback
	}
	return o.value
}

// UnwrapOrElse calls fn only when o is None.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.some {
		return fn()
	}
	return o.value
}

func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// Map applies fn to the value. See solo.MapOption for a change of type.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(fn(o.value))
}

// MapOr returns fn(value), or fallback on None. fallback is evaluated by the
// caller either way.
func (o Option[T]) MapOr(fallback T, fn func(T) T) T {
	if !o.some {
		return fallback
	}
	return fn(o.value)
}

func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alt
}

func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if !o.some || !pred(o.value) {
		return None[T]()
	}
	return o
}

func (o Option[T]) OkOr(err error) Result[T] {
	if !o.some {
		return Err[T](err)
	}
	return Ok(o.value)
}

// OkOrMsg is OkOr with a failure built from msg.
func (o Option[T]) OkOrMsg(msg string) Result[T] {
	if !o.some {
		return Err[T](errors.New(msg))
	}
	return Ok(o.value)
}

// OkOrElse builds the failure lazily.
func (o Option[T]) OkOrElse(fn func() error) Result[T] {
	if !o.some {
		return Err[T](fn())
	}
	return Ok(o.value)
}

// Peek exposes the value and the presence flag, the usual comma-ok pair.
// The value is T's zero value when ok is false and must not be compared
// against domain values to detect absence.
func (o Option[T]) Peek() (T, bool) {
	return o.value, o.some
}

// Iter yields the value once, or nothing.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// FlattenOption removes one level of nesting.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}
