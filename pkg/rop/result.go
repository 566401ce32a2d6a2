package rop

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Result holds either a success value or a failure error. The variant is an
// explicit tag, so any T, including error types, can be carried as a value.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err builds a failed Result. A nil err is replaced by ErrNilError so a
// failure never loses its error.
func Err[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilError
	}
	return Result[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrMsg builds a failed Result from a message. The error records the
// stack of the caller.
func ErrMsg[T any](msg string) Result[T] {
	return Err[T](errors.New(msg))
}

func Errf[T any](format string, args ...any) Result[T] {
	return Err[T](errors.Errorf(format, args...))
}

// Of lifts a Go (value, error) pair.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// FailFrom moves the failure of from to a Result of another type, keeping
// its id and creation time. from must be a failure.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.ok {
		panic(newContractError("FailFrom called on a successful result",
			ErrSuccessUnwrapped, nil))
	}
	return Result[Out]{
		err:       from.failure(),
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) failure() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return ErrNilError
	}
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

func (r Result[T]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

func (r Result[T]) IsErrAnd(pred func(error) bool) bool {
	return !r.ok && pred(r.failure())
}

// Expect returns the success value. On failure it panics with a
// *ContractError carrying msg and the rendering of the failure.
func (r Result[T]) Expect(msg string) T {
	if !r.ok {
		panic(newContractError(msg, ErrFailureUnwrapped, r.failure()))
	}
	return r.value
}

// ExpectErr returns the failure. On success it panics with a *ContractError
// carrying msg and the success value.
func (r Result[T]) ExpectErr(msg string) error {
	if r.ok {
		panic(r.successMismatch(msg))
	}
	return r.failure()
}

func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(newContractError(ErrFailureUnwrapped.Error(), ErrFailureUnwrapped, r.failure()))
	}
	return r.value
}

func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic(r.successMismatch(ErrSuccessUnwrapped.Error()))
	}
	return r.failure()
}

func (r Result[T]) successMismatch(msg string) *ContractError {
	ce := newContractError(msg, ErrSuccessUnwrapped, nil)
	ce.Detail = fmt.Sprintf("%v", r.value)
	return ce
}

func (r Result[T]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapOrElse computes the fallback from the failure.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.failure())
}

func (r Result[T]) UnwrapOrZero() T {
	return r.value
}

// Map transforms the success value. See solo.Map for a change of type.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	if !r.ok {
		return r
	}
	return Ok(fn(r.value))
}

func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](fn(r.failure()))
}

// MapOr returns fn(value) on success and fallback on failure.
func (r Result[T]) MapOr(fallback T, fn func(T) T) T {
	if !r.ok {
		return fallback
	}
	return fn(r.value)
}

func (r Result[T]) Or(alt Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return alt
}

func (r Result[T]) OrElse(fn func(error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return fn(r.failure())
}

func (r Result[T]) And(next Result[T]) Result[T] {
	if !r.ok {
		return r
	}
	return next
}

// Ok drops the failure detail.
func (r Result[T]) Ok() Option[T] {
	if !r.ok {
		return None[T]()
	}
	return Some(r.value)
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error {
	return r.failure()
}

func (r Result[T]) ErrOption() Option[error] {
	if r.ok {
		return None[error]()
	}
	return Some(r.failure())
}

// Peek exposes both slots for exhaustive branching. Exactly one of them is
// meaningful: err is nil for a success.
//
//	v, err := r.Peek()
//	if err != nil {
//		return err
//	}
func (r Result[T]) Peek() (T, error) {
	return r.value, r.failure()
}

// Throw panics with the contained error when r is a failure and does nothing
// otherwise. It is the one operation meant to leave value-based flow; use it
// at a boundary that expects panics, and Peek where a (T, error) pair fits.
func (r Result[T]) Throw() {
	if !r.ok {
		panic(r.failure())
	}
}

// Iter yields the success value once, or nothing.
func (r Result[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.failure())
}

// Flatten collapses one level of nesting.
func Flatten[T any](r Result[Result[T]]) Result[T] {
	if !r.ok {
		return FailFrom[Result[T], T](r)
	}
	return r.value
}
