package fn

// Compose returns the right-to-left composition of fns:
// Compose(f, g, h)(x) == f(g(h(x))). With no functions it returns identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Pipe applies fns to v from left to right.
func Pipe[T any](v T, fns ...func(T) T) T {
	for _, f := range fns {
		v = f(v)
	}
	return v
}

// Not negates pred.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool {
		return !pred(v)
	}
}

// Matcher is a functional replacement for an if/else chain over one value.
// The first branch whose predicate holds produces the result; later branches
// are not evaluated.
type Matcher[T, R any] struct {
	value   T
	result  R
	matched bool
}

// Match starts a Matcher over v.
//
//	status := fn.Match[error, int](err).
//	    On(isNotFound, func(error) int { return 404 }).
//	    Otherwise(func(error) int { return 500 })
func Match[T, R any](v T) *Matcher[T, R] {
	return &Matcher[T, R]{value: v}
}

// On registers a branch.
func (m *Matcher[T, R]) On(pred func(T) bool, then func(T) R) *Matcher[T, R] {
	if !m.matched && pred(m.value) {
		m.result = then(m.value)
		m.matched = true
	}
	return m
}

// Otherwise returns the result of the first matching branch, or orElse applied
// to the value when no branch matched.
func (m *Matcher[T, R]) Otherwise(orElse func(T) R) R {
	if m.matched {
		return m.result
	}
	return orElse(m.value)
}
