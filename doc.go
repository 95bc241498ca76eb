// Package is provides runtime predicates over values of unknown static type.
//
// Every single-value predicate has the signature func(any) bool and is total:
// it never panics and returns false for values outside its domain. Predicates
// that take several arguments whose kinds matter (Min, Max, InRange, InSlice,
// All) return an error instead of silently answering false when an argument
// has the wrong kind.
//
// Type predicates are thin wrappers over the closed kind set of package
// dispatch:
//
//	is.String("hi")          // true
//	is.Number(math.NaN())    // false, NaN is not a number
//	is.Sequence([3]int{})    // true
//
// Card predicates delegate to package card:
//
//	is.CardNumber("4111 1111 1111 1111") // true
//	is.Visa("4111-1111-1111-1111")       // true
//
// Predicates are also reachable by name, which is how the is CLI and the isd
// HTTP service expose them:
//
//	p, ok := is.Lookup("email")
//	if ok && p("user@example.com") { ... }
package is
