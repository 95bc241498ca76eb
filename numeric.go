package is

import (
	"math"
	"reflect"
	"slices"

	"github.com/dmitrymomot/is/pkg/dispatch"
	"github.com/dmitrymomot/is/pkg/fn"
)

// Zero reports whether v is a number equal to zero, of either sign.
func Zero(v any) bool {
	f, ok := toFloat(v)
	return ok && f == 0
}

// PositiveZero reports whether v is zero without a sign bit. Integer zero is
// positive zero.
func PositiveZero(v any) bool {
	f, ok := toFloat(v)
	return ok && f == 0 && !math.Signbit(f)
}

// NegativeZero reports whether v is a float negative zero.
func NegativeZero(v any) bool {
	f, ok := toFloat(v)
	return ok && f == 0 && math.Signbit(f)
}

// Positive reports whether v is a number greater than zero.
func Positive(v any) bool {
	f, ok := toFloat(v)
	return ok && f > 0
}

// Negative reports whether v is a number less than zero.
func Negative(v any) bool {
	f, ok := toFloat(v)
	return ok && f < 0
}

// Odd reports whether v is an odd integer. Non-integers are neither odd nor even.
func Odd(v any) bool {
	odd, ok := parity(v)
	return ok && odd
}

// Even reports whether v is an even integer.
func Even(v any) bool {
	odd, ok := parity(v)
	return ok && !odd
}

// Min reports whether value >= min.
//
// Unlike the single-value predicates, the range helpers treat a non-number
// argument as a programming error and return an *dispatch.ArgumentError.
func Min(value, min any) (bool, error) {
	n, err := numbers([]string{"value", "min"}, value, min)
	if err != nil {
		return false, err
	}
	return n[0] >= n[1], nil
}

// Max reports whether value <= max.
func Max(value, max any) (bool, error) {
	n, err := numbers([]string{"value", "max"}, value, max)
	if err != nil {
		return false, err
	}
	return n[0] <= n[1], nil
}

// InRange reports whether min < value < max.
func InRange(value, min, max any) (bool, error) {
	n, err := numbers([]string{"value", "min", "max"}, value, min, max)
	if err != nil {
		return false, err
	}
	return n[0] > n[1] && n[0] < n[2], nil
}

// InRangeIncluding reports whether min <= value <= max.
func InRangeIncluding(value, min, max any) (bool, error) {
	n, err := numbers([]string{"value", "min", "max"}, value, min, max)
	if err != nil {
		return false, err
	}
	return n[0] >= n[1] && n[0] <= n[2], nil
}

// numbers converts args to float64, naming the first non-number argument in
// the returned error. Values are compared as float64, so integers beyond 2^53
// lose precision.
func numbers(names []string, args ...any) ([]float64, error) {
	ok, err := dispatch.Every(func(v any, _ int, _ []any) bool { return Number(v) }, args)
	if err != nil {
		return nil, err
	}
	if !ok {
		i := slices.IndexFunc(args, fn.Not(Number))
		return nil, dispatch.NewArgumentError(names[i], args[i], "expected a number")
	}
	return fn.Map(args, func(v any) float64 {
		f, _ := toFloat(v)
		return f
	}), nil
}

func toFloat(v any) (float64, bool) {
	if !Number(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return float64(rv.Int()), true
}

func parity(v any) (odd bool, ok bool) {
	if !Integer(v) {
		return false, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.Mod(rv.Float(), 2) != 0, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()%2 != 0, true
	}
	return rv.Int()%2 != 0, true
}
