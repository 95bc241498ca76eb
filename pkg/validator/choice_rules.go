package validator

import (
	"fmt"
	"slices"
)

// OneOf validates that value equals one of allowed.
func OneOf[T comparable](field string, value T, allowed ...T) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: newError(field, fmt.Sprintf("must be one of: %v", allowed), "validation.one_of", map[string]any{
			"allowed_values": allowed,
		}),
	}
}
