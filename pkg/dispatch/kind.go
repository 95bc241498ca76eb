package dispatch

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"time"
)

// Kind names a category of values. The set is closed: every Kind has exactly
// one membership predicate, registered in the kinds table below.
type Kind uint8

const (
	// KindUnknown is the zero Kind. It never matches.
	KindUnknown Kind = iota
	KindNil
	KindText
	KindBoolean
	KindNumber
	KindCallable
	KindTime
	KindPattern
	KindSequence
	KindObject
)

type kindEntry struct {
	name  string
	match func(v any) bool
}

// kinds is the only place where a Kind is resolved to its predicate.
// Order matters for KindOf: the first matching entry wins.
var kinds = [...]kindEntry{
	KindUnknown:  {name: "unknown", match: func(any) bool { return false }},
	KindNil:      {name: "nil", match: isNil},
	KindText:     {name: "text", match: isText},
	KindBoolean:  {name: "boolean", match: isBoolean},
	KindNumber:   {name: "number", match: isNumber},
	KindCallable: {name: "callable", match: isCallable},
	KindTime:     {name: "time", match: isTime},
	KindPattern:  {name: "pattern", match: isPattern},
	KindSequence: {name: "sequence", match: isSequence},
	KindObject:   {name: "object", match: isObject},
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Matches reports whether v belongs to kind k. Unknown kinds match nothing.
func (k Kind) Matches(v any) bool {
	if !k.valid() {
		return false
	}
	return kinds[k].match(v)
}

func (k Kind) valid() bool {
	return int(k) < len(kinds)
}

// KindOf returns the first kind, in declaration order, that v belongs to.
// It returns KindUnknown for values outside the closed set, such as NaN,
// channels or complex numbers.
func KindOf(v any) Kind {
	for k := KindNil; int(k) < len(kinds); k++ {
		if kinds[k].match(v) {
			return k
		}
	}
	return KindUnknown
}

// Kinds returns every matchable kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds)-1)
	for k := KindNil; int(k) < len(kinds); k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a kind by its name as returned by Kind.String.
func ParseKind(name string) (Kind, error) {
	for k := KindNil; int(k) < len(kinds); k++ {
		if kinds[k].name == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func isText(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.String
}

func isBoolean(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Bool
}

// isNumber excludes NaN: it is typed as a float but denotes no number.
func isNumber(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(rv.Float())
	}
	return false
}

func isCallable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func isTime(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

func isPattern(v any) bool {
	re, ok := v.(*regexp.Regexp)
	return ok && re != nil
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func isObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return true
	case reflect.Pointer:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	}
	return false
}
