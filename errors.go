package is

import "errors"

// ErrUnknownPredicate is returned (or panicked with) when a predicate name is
// not registered.
var ErrUnknownPredicate = errors.New("unknown predicate")
