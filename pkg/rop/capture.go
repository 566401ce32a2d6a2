package rop

// From runs fn and captures every way it can fail: a non-nil error becomes
// the failure, and so does a panic. A panic value that is not an error is
// wrapped in a *PanicError.
func From[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[T](AsError(r))
		}
	}()
	return Of(fn())
}

// FromValue is From for functions that can only fail by panicking.
func FromValue[T any](fn func() T) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[T](AsError(r))
		}
	}()
	return Ok(fn())
}

// OptionFrom runs fn and maps a nil result (see IsNil) to None. Zero values
// such as 0 or "" are present values. Panics are not recovered.
func OptionFrom[T any](fn func() T) Option[T] {
	v := fn()
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// OptionFromPtr runs fn and dereferences a non-nil pointer into Some.
func OptionFromPtr[T any](fn func() *T) Option[T] {
	p := fn()
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// OptionFromPair adapts comma-ok lookups.
//
//	port := rop.OptionFromPair(func() (string, bool) { return os.LookupEnv("PORT") })
func OptionFromPair[T any](fn func() (T, bool)) Option[T] {
	v, ok := fn()
	if !ok {
		return None[T]()
	}
	return Some(v)
}
