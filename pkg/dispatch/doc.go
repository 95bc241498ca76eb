// Package dispatch lets a predicate guard its body behind a kind check without
// repeating the check itself.
//
// A Kind is one of a closed set of value categories (text, number, sequence,
// callable, ...). Each kind has exactly one membership predicate, kept in a
// single table, so adding a kind touches one place.
//
// # Gates
//
// Gate runs a continuation only when the value is of the requested kind:
//
//	n, err := dispatch.Gate(dispatch.KindText, v, func(v any) int {
//	    return len(v.(string))
//	})
//	if errors.Is(err, dispatch.ErrTypeMismatch) {
//	    // v was not text
//	}
//
// GateFor binds the kind up front; IfText, IfSequence and IfCallable are the
// guards used across the module.
//
// # Errors
//
// Two classes of failure are kept apart. A value of the wrong kind produces a
// *TypeMismatchError; callers that are total predicates turn it into false.
// Misuse of the combinators themselves (nil continuation, nil predicate,
// unknown kind) produces an *ArgumentError and is never swallowed.
package dispatch
