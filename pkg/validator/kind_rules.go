package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/is"
	"github.com/dmitrymomot/is/pkg/dispatch"
)

// Required validates that value is something other than nil or NaN. Text
// must contain a non-whitespace character.
func Required(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			blank, err := dispatch.IfText(value, func(s string) bool { return strings.TrimSpace(s) == "" })
			return is.NotEmpty(value) && (err != nil || !blank)
		},
		Error: newError(field, "field is required", "validation.required", nil),
	}
}

// Kind validates that value belongs to kind k.
func Kind(field string, value any, k dispatch.Kind) Rule {
	return Rule{
		Check: func() bool { return k.Matches(value) },
		Error: newError(field, fmt.Sprintf("must be a %s", k), "validation.kind", map[string]any{
			"kind": k.String(),
		}),
	}
}

// Predicate validates value with the predicate registered under name.
// An unregistered name is a programming error and panics immediately, not at
// Apply time.
func Predicate(field string, value any, name string) Rule {
	p, ok := is.Lookup(name)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownPredicate, name))
	}
	return Rule{
		Check: func() bool { return p(value) },
		Error: newError(field, fmt.Sprintf("must satisfy %s", name), "validation.predicate", map[string]any{
			"predicate": name,
		}),
	}
}
