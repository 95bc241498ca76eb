package validator

import "errors"

var (
	// ErrValidationFailed is matched by every non-empty ValidationErrors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownPredicate is the panic value of Predicate for unregistered names.
	ErrUnknownPredicate = errors.New("validator: unknown predicate")
)
