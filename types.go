package is

import (
	"math"
	"reflect"

	"github.com/dmitrymomot/is/pkg/dispatch"
)

// String reports whether v is text. Named string types count.
func String(v any) bool { return dispatch.KindText.Matches(v) }

// Sequence reports whether v is a slice or an array.
func Sequence(v any) bool { return dispatch.KindSequence.Matches(v) }

// Array is an alias for Sequence.
func Array(v any) bool { return Sequence(v) }

// Number reports whether v is an integer or a float other than NaN.
func Number(v any) bool { return dispatch.KindNumber.Matches(v) }

func Boolean(v any) bool { return dispatch.KindBoolean.Matches(v) }

// Func reports whether v is a non-nil function.
func Func(v any) bool { return dispatch.KindCallable.Matches(v) }

// Time reports whether v is a time.Time or a non-nil *time.Time.
func Time(v any) bool { return dispatch.KindTime.Matches(v) }

// Regexp reports whether v is a compiled regular expression.
func Regexp(v any) bool { return dispatch.KindPattern.Matches(v) }

// Object reports whether v is a map, a struct or a pointer to a struct.
func Object(v any) bool { return dispatch.KindObject.Matches(v) }

// Nil reports whether v is nil, including typed nil pointers, maps, slices,
// funcs and channels.
func Nil(v any) bool { return dispatch.KindNil.Matches(v) }

// Integer reports whether v is a number without a fractional part.
// Floats such as 14.0 are integers; infinities are not.
func Integer(v any) bool {
	if !Number(v) {
		return false
	}
	f, isFloat := floatValue(v)
	if !isFloat {
		return true
	}
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// Float reports whether v is a finite number with a fractional part.
func Float(v any) bool {
	f, isFloat := floatValue(v)
	return isFloat && !math.IsNaN(f) && !math.IsInf(f, 0) && f != math.Trunc(f)
}

// NaN reports whether v is a float NaN. It is the only value for which
// NaN(v) holds; nothing else is "not a number" in this sense.
func NaN(v any) bool {
	f, isFloat := floatValue(v)
	return isFloat && math.IsNaN(f)
}

// Infinite reports whether v is positive or negative infinity.
func Infinite(v any) bool {
	f, isFloat := floatValue(v)
	return isFloat && math.IsInf(f, 0)
}

// Something reports whether v is neither nil nor NaN.
func Something(v any) bool {
	return !Nil(v) && !NaN(v)
}

// NotEmpty reports whether v is something other than the empty string.
func NotEmpty(v any) bool {
	if !Something(v) {
		return false
	}
	return !String(v) || reflect.ValueOf(v).String() != ""
}

// Falsy reports whether v is nil, false, a numeric zero, the empty string or NaN.
func Falsy(v any) bool {
	switch {
	case Nil(v), NaN(v):
		return true
	case Boolean(v):
		return !reflect.ValueOf(v).Bool()
	case String(v):
		return reflect.ValueOf(v).String() == ""
	case Number(v):
		return Zero(v)
	}
	return false
}

// Truthy is the negation of Falsy.
func Truthy(v any) bool {
	return !Falsy(v)
}

// floatValue returns v as float64 when its underlying kind is a float.
func floatValue(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
