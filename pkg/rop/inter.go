package rop

import "time"

// OkChecker is the shape shared by every Result[T], whatever T is.
type OkChecker interface {
	// IsOk returns true if the result holds a success value
	IsOk() bool
	// IsErr returns true if the result holds a failure
	IsErr() bool
}

// SomeChecker is the shape shared by every Option[T].
type SomeChecker interface {
	IsSome() bool
	IsNone() bool
}

// WithError is implemented by Result[T] for a fixed T.
type WithError[T any] interface {
	OkChecker
	// Peek returns the success value and the failure, one of them meaningful
	Peek() (T, error)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ WithError[int] = Result[int]{}
	_ SomeChecker    = Option[int]{}
)
