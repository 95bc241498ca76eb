// Package validator builds field-level validation rules on top of the is
// predicates and the card validator.
//
// A Rule pairs a Check func with translation-friendly error metadata. Apply
// runs every rule and aggregates the failures into ValidationErrors, which
// implements error and matches ErrValidationFailed:
//
//	err := validator.Apply(
//	    validator.Required("number", req.Number),
//	    validator.CardNumber("number", req.Number),
//	    validator.CardIssuer("number", req.Number, card.Visa, card.MasterCard),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Fields(), verrs.Get("number"), ...
//	}
//
// Rule constructors are cheap and stateless. Invalid data never panics;
// naming an unregistered predicate in Predicate does.
package validator
