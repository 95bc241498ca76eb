package validator

import "github.com/dmitrymomot/is"

func Email(field, value string) Rule {
	return Rule{
		Check: func() bool { return is.Email(value) },
		Error: newError(field, "must be a valid email address", "validation.email", nil),
	}
}

// URL accepts http and https addresses; the scheme may be omitted.
func URL(field, value string) Rule {
	return Rule{
		Check: func() bool { return is.URL(value) },
		Error: newError(field, "must be a valid URL", "validation.url", nil),
	}
}

// UUID validates the canonical hyphenated form.
func UUID(field, value string) Rule {
	return Rule{
		Check: func() bool { return is.UUID(value) },
		Error: newError(field, "must be a valid UUID", "validation.uuid", nil),
	}
}

func HexColor(field, value string) Rule {
	return Rule{
		Check: func() bool { return is.HexColor(value) },
		Error: newError(field, "must be a hex color", "validation.hex_color", nil),
	}
}
