package rop

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNoneUnwrapped    = errors.New("called Unwrap on a None option")
	ErrFailureUnwrapped = errors.New("called Unwrap on a failed result")
	ErrSuccessUnwrapped = errors.New("called UnwrapErr on a successful result")
	ErrNilError         = errors.New("result failed with a nil error")
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// ContractError is the panic value of the unchecked extractions (Unwrap,
// Expect and their Err counterparts) when the container is in the wrong state.
// errors.Is matches both the sentinel and the failure held by the container.
type ContractError struct {
	Msg    string
	Detail string

	sentinel error
	cause    error
}

func newContractError(msg string, sentinel, cause error) *ContractError {
	ce := &ContractError{Msg: msg, sentinel: sentinel, cause: cause}
	if cause != nil {
		ce.Detail = diagnostic(cause)
	}
	return ce
}

func (e *ContractError) Error() string {
	if e.Detail == "" {
		return e.Msg
	}
	return e.Msg + ": " + e.Detail
}

func (e *ContractError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.sentinel != nil {
		errs = append(errs, e.sentinel)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// PanicError holds a recovered panic value that was not itself an error.
type PanicError struct {
	Value any

	trace error
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, trace: errors.Errorf("panic: %v", v)}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// StackTrace points at the frames active when the panic was recovered.
func (e *PanicError) StackTrace() errors.StackTrace {
	if st, ok := e.trace.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// AsError turns a recovered panic value into an error, keeping error values as is.
func AsError(recovered any) error {
	if err, ok := recovered.(error); ok && !IsNil(err) {
		return err
	}
	return newPanicError(recovered)
}

// diagnostic renders the best available description of err: its message
// followed by a stack trace when one was recorded somewhere in the chain.
func diagnostic(err error) string {
	var st stackTracer
	if !errors.As(err, &st) {
		return err.Error()
	}
	return fmt.Sprintf("%s%+v", err.Error(), st.StackTrace())
}
