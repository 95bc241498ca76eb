package is

import (
	"reflect"
	"slices"

	"github.com/dmitrymomot/is/pkg/dispatch"
)

// Equal reports whether a and b are equal under Go's == operator. Values that
// cannot be compared (slices, maps, funcs, structs holding them) are never
// equal, not even to themselves; neither is NaN.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}

// NotEqual is the negation of Equal.
func NotEqual(a, b any) bool {
	return !Equal(a, b)
}

// InSlice reports whether seq holds an element Equal to value.
// seq must be a slice or an array.
func InSlice(seq, value any) (bool, error) {
	found, err := dispatch.IfSequence(seq, func(items []any) bool {
		return slices.ContainsFunc(items, func(item any) bool { return Equal(item, value) })
	})
	if err != nil {
		return false, dispatch.AsArgumentError("seq", seq, err)
	}
	return found, nil
}

// All reports whether pred holds for every element of seq, stopping at the
// first element that fails. An empty seq yields true. seq must be a slice or
// an array and pred must not be nil.
func All(pred Predicate, seq any) (bool, error) {
	if pred == nil {
		return false, dispatch.NewArgumentError("pred", pred, "expected a predicate")
	}
	return dispatch.EveryValue(func(item any, _ int, _ []any) bool { return pred(item) }, seq)
}
