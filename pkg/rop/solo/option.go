package solo

import "github.com/ib-77/ropt/pkg/rop"

func MapOption[In, Out any](input rop.Option[In], onSome func(v In) Out) rop.Option[Out] {
	v, ok := input.Peek()
	if !ok {
		return rop.None[Out]()
	}
	return rop.Some(onSome(v))
}

func MapOptionOr[In, Out any](input rop.Option[In], fallback Out, onSome func(v In) Out) Out {
	v, ok := input.Peek()
	if !ok {
		return fallback
	}
	return onSome(v)
}

func FlatMapOption[In, Out any](input rop.Option[In], onSome func(v In) rop.Option[Out]) rop.Option[Out] {
	v, ok := input.Peek()
	if !ok {
		return rop.None[Out]()
	}
	return onSome(v)
}

func MatchOption[In, Out any](input rop.Option[In], onSome func(v In) Out, onNone func() Out) Out {
	v, ok := input.Peek()
	if !ok {
		return onNone()
	}
	return onSome(v)
}

// Pair is the element type produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip is Some only when both options are.
func Zip[A, B any](a rop.Option[A], b rop.Option[B]) rop.Option[Pair[A, B]] {
	va, okA := a.Peek()
	vb, okB := b.Peek()
	if !okA || !okB {
		return rop.None[Pair[A, B]]()
	}
	return rop.Some(Pair[A, B]{First: va, Second: vb})
}

// Transpose turns an optional result into a result of an option. None maps
// to Ok(None).
func Transpose[T any](input rop.Option[rop.Result[T]]) rop.Result[rop.Option[T]] {
	r, ok := input.Peek()
	if !ok {
		return rop.Ok(rop.None[T]())
	}
	return Map(r, rop.Some[T])
}
