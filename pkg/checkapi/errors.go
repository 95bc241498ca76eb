package checkapi

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest marks request bodies that are not valid JSON for the endpoint.
	ErrBadRequest = errors.New("malformed request body")

	// ErrUnknownPredicate is returned for predicate names missing from the registry.
	ErrUnknownPredicate = errors.New("unknown predicate")
)

func unknownPredicate(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
}
