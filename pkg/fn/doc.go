// Package fn holds the small generic toolkit the predicates are built from:
// iteration (Each, EachReversed, Map, Filter, Find), folds (Fold, FoldRight),
// composition (Compose, Pipe, Not, Match) and copy-on-write slice helpers
// (Push, Unshift, Shift, Pop).
//
// None of the helpers mutate their input. Callbacks must not be nil.
package fn
