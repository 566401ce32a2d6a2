package rop

// Go has no overridable type-membership operator, so the four constructors
// come with named predicates instead. Where other libraries would write
// `x instanceof Ok`, call IsOkResult(x). They accept any value: a Result or
// Option of any element type, a pointer to one, or anything else (false).

func IsOkResult(x any) bool {
	c, ok := asOkChecker(x)
	return ok && c.IsOk()
}

func IsErrResult(x any) bool {
	c, ok := asOkChecker(x)
	return ok && c.IsErr()
}

func IsSomeOption(x any) bool {
	c, ok := asSomeChecker(x)
	return ok && c.IsSome()
}

func IsNoneOption(x any) bool {
	c, ok := asSomeChecker(x)
	return ok && c.IsNone()
}

func asOkChecker(x any) (OkChecker, bool) {
	if IsNil(x) {
		return nil, false
	}
	c, ok := x.(OkChecker)
	return c, ok
}

func asSomeChecker(x any) (SomeChecker, bool) {
	if IsNil(x) {
		return nil, false
	}
	c, ok := x.(SomeChecker)
	return c, ok
}
