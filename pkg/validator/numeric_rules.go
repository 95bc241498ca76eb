package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: newError(field, fmt.Sprintf("must be at least %v", min), "validation.min", map[string]any{
			"min": min,
		}),
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: newError(field, fmt.Sprintf("must be at most %v", max), "validation.max", map[string]any{
			"max": max,
		}),
	}
}

// InRange validates min <= value <= max.
func InRange[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: newError(field, fmt.Sprintf("must be between %v and %v", min, max), "validation.in_range", map[string]any{
			"min": min,
			"max": max,
		}),
	}
}
