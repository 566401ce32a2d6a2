package solo

import (
	"errors"

	"github.com/ib-77/ropt/pkg/rop"
)

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(rop.Ok(input), validate)
}

func AndValidate[T any](input rop.Result[T], validate func(in T) (valid bool, errMsg string)) rop.Result[T] {
	if input.IsErr() {
		return input
	}

	v, _ := input.Peek()
	if isValid, errMsg := validate(v); !isValid {
		return rop.ErrMsg[T](errMsg)
	}
	return input
}

// ValidateAll runs every check against the input and joins the failures.
// With breakOnError it stops at the first failing check.
func ValidateAll[T any](input rop.Result[T], breakOnError bool,
	checks ...func(in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if input.IsErr() {
		return input
	}

	var errs []error
	for _, check := range checks {
		current := check(input)
		if current.IsOk() {
			continue
		}

		errs = append(errs, rop.GetErrors(current.Err())...)
		if breakOnError {
			break
		}
	}

	if len(errs) == 0 {
		return input
	}
	return rop.Err[T](errors.Join(errs...))
}

// Switch continues with a function that returns a Result of its own.
func Switch[In any, Out any](input rop.Result[In], onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {
	v, err := input.Peek()
	if err != nil {
		return rop.FailFrom[In, Out](input)
	}
	return onSuccess(v)
}

func Map[In any, Out any](input rop.Result[In], onSuccess func(r In) Out) rop.Result[Out] {
	v, err := input.Peek()
	if err != nil {
		return rop.FailFrom[In, Out](input)
	}
	return rop.Ok(onSuccess(v))
}

// MapOr returns onSuccess(value), or fallback for a failure.
func MapOr[In any, Out any](input rop.Result[In], fallback Out, onSuccess func(r In) Out) Out {
	v, err := input.Peek()
	if err != nil {
		return fallback
	}
	return onSuccess(v)
}

func MapOrElse[In any, Out any](input rop.Result[In], onError func(err error) Out, onSuccess func(r In) Out) Out {
	return Finally(input, onSuccess, onError)
}

func Tee[T any](input rop.Result[T], onSuccess func(r T)) rop.Result[T] {
	if v, err := input.Peek(); err == nil {
		onSuccess(v)
	}
	return input
}

func TeeIf[T any](input rop.Result[T], condition func(r T) bool, onSuccessAndCondition func(r T)) rop.Result[T] {
	if v, err := input.Peek(); err == nil && condition(v) {
		onSuccessAndCondition(v)
	}
	return input
}

func DoubleTee[T any](input rop.Result[T], onSuccess func(r T), onError func(err error)) rop.Result[T] {
	if v, err := input.Peek(); err != nil {
		onError(err)
	} else {
		onSuccess(v)
	}
	return input
}

// Try calls a (value, error) function on the success value. Errors and
// panics of onTryExecute become the failure.
func Try[In any, Out any](input rop.Result[In], onTryExecute func(r In) (Out, error)) rop.Result[Out] {
	v, err := input.Peek()
	if err != nil {
		return rop.FailFrom[In, Out](input)
	}
	return rop.From(func() (Out, error) { return onTryExecute(v) })
}

func FailOnError[T any](input rop.Result[T], maybeErr func(in T) error) rop.Result[T] {
	v, err := input.Peek()
	if err != nil {
		return input
	}
	if err := maybeErr(v); err != nil {
		return rop.Err[T](err)
	}
	return input
}

// Finally reduces the result to a plain value, one handler per variant.
func Finally[In, Out any](input rop.Result[In], onSuccess func(r In) Out, onError func(err error) Out) Out {
	v, err := input.Peek()
	if err != nil {
		return onError(err)
	}
	return onSuccess(v)
}
