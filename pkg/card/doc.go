// Package card validates payment card numbers and identifies their issuer.
//
// Validation runs in three steps: the candidate must be a string, it must hold
// between 12 and 19 decimal digits once every other character (spaces,
// hyphens, anything) is dropped, and those digits must pass the Luhn checksum.
// Invalid input is never an error: Valid and the issuer predicates simply
// return false.
//
//	card.Valid("4539 1488 0343 6467") // true
//	card.Valid("4539 1488 0343 6468") // false, checksum
//	card.Valid(4539148803436467)      // false, not a string
//
// # Issuers
//
// Issuer predicates (IsVisa, IsMasterCard, ...) first require Valid and then
// match the issuer's prefix against the original string as given, without
// stripping. Classify picks the first matching issuer in table order; Matches
// returns every match.
//
// The checks are plausibility filters. A number that passes is well formed,
// not necessarily issued.
package card
