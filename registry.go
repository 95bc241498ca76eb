package is

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/is/pkg/dispatch"
)

// Predicate is a total check over an arbitrary value.
type Predicate func(v any) bool

var registry = buildRegistry()

func buildRegistry() map[string]Predicate {
	r := map[string]Predicate{
		"array":           Array,
		"string":          String,
		"number":          Number,
		"integer":         Integer,
		"float":           Float,
		"NaN":             NaN,
		"nan":             NaN,
		"infinite":        Infinite,
		"null":            Nil,
		"boolean":         Boolean,
		"function":        Func,
		"date":            Time,
		"regexp":          Regexp,
		"obj":             Object,
		"something":       Something,
		"notEmpty":        NotEmpty,
		"truthy":          Truthy,
		"falsy":           Falsy,
		"zero":            Zero,
		"positiveZero":    PositiveZero,
		"negativeZero":    NegativeZero,
		"positive":        Positive,
		"negative":        Negative,
		"odd":             Odd,
		"even":            Even,
		"json":            JSON,
		"email":           Email,
		"url":             URL,
		"hexColor":        HexColor,
		"alphaWord":       AlphaWord,
		"uuid":            UUID,
		"cardNumber":      CardNumber,
		"creditCard":      CardNumber,
		"visa":            Visa,
		"masterCard":      MasterCard,
		"americanExpress": AmericanExpress,
		"discover":        Discover,
		"dinersClub":      DinersClub,
		"jcb":             JCB,
		"maestro":         Maestro,
	}
	// Every kind is reachable by its own name ("text", "sequence", "object", ...).
	for _, k := range dispatch.Kinds() {
		if _, taken := r[k.String()]; !taken {
			r[k.String()] = k.Matches
		}
	}
	return r
}

// Lookup returns the predicate registered under name.
func Lookup(name string) (Predicate, bool) {
	p, ok := registry[name]
	return p, ok
}

// MustLookup is like Lookup but panics for unknown names.
func MustLookup(name string) Predicate {
	p, ok := Lookup(name)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownPredicate, name))
	}
	return p
}

// Names returns every registered predicate name, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}
