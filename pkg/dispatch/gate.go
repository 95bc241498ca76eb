package dispatch

import "reflect"

// Guard is a Gate with its kind already fixed.
type Guard[R any] func(value any, next func(any) R) (R, error)

// Gate invokes next with value when value belongs to kind k and returns its
// result. Otherwise it returns a *TypeMismatchError naming both kinds.
// An unknown kind or a nil continuation yields an *ArgumentError.
func Gate[R any](k Kind, value any, next func(any) R) (R, error) {
	var zero R
	if k == KindUnknown || !k.valid() {
		return zero, NewArgumentError("kind", k, "expected a known kind")
	}
	if next == nil {
		return zero, NewArgumentError("next", next, "expected a continuation")
	}
	if !k.Matches(value) {
		return zero, newTypeMismatch(k, value)
	}
	return next(value), nil
}

// GateFor returns Gate with k bound as its kind.
func GateFor[R any](k Kind) Guard[R] {
	return MustBind3(Gate[R], k)
}

// IfText gates value on KindText and passes its underlying string to next.
// Named string types are accepted.
func IfText[R any](value any, next func(string) R) (R, error) {
	if next == nil {
		var zero R
		return zero, NewArgumentError("next", next, "expected a continuation")
	}
	return GateFor[R](KindText)(value, func(v any) R {
		return next(reflect.ValueOf(v).String())
	})
}

// IfSequence gates value on KindSequence and passes a copy of its elements to
// next, so next never observes later mutation of the original.
func IfSequence[R any](value any, next func([]any) R) (R, error) {
	if next == nil {
		var zero R
		return zero, NewArgumentError("next", next, "expected a continuation")
	}
	return GateFor[R](KindSequence)(value, func(v any) R {
		return next(snapshot(v))
	})
}

// IfCallable gates value on KindCallable.
func IfCallable[R any](value any, next func(any) R) (R, error) {
	return GateFor[R](KindCallable)(value, next)
}

func snapshot(v any) []any {
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
