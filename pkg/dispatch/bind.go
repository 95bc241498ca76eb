package dispatch

// Bind2 fixes the leading argument of fn. The returned function takes the
// remaining argument at call time and may be called any number of times.
func Bind2[A, B, R any](fn func(A, B) (R, error), a A) (func(B) (R, error), error) {
	if fn == nil {
		return nil, NewArgumentError("fn", fn, "expected a function to bind")
	}
	return func(b B) (R, error) {
		return fn(a, b)
	}, nil
}

// Bind3 fixes the leading argument of fn. Call-time arguments follow the bound
// one in their declared order: Bind3(f, a)(b, c) == f(a, b, c).
func Bind3[A, B, C, R any](fn func(A, B, C) (R, error), a A) (func(B, C) (R, error), error) {
	if fn == nil {
		return nil, NewArgumentError("fn", fn, "expected a function to bind")
	}
	return func(b B, c C) (R, error) {
		return fn(a, b, c)
	}, nil
}

// MustBind2 is like Bind2 but panics when fn is nil.
// Intended for package-level helpers built at init time.
func MustBind2[A, B, R any](fn func(A, B) (R, error), a A) func(B) (R, error) {
	bound, err := Bind2(fn, a)
	if err != nil {
		panic(err)
	}
	return bound
}

// MustBind3 is like Bind3 but panics when fn is nil.
func MustBind3[A, B, C, R any](fn func(A, B, C) (R, error), a A) func(B, C) (R, error) {
	bound, err := Bind3(fn, a)
	if err != nil {
		panic(err)
	}
	return bound
}
