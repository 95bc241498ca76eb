package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/is/pkg/card"
	"github.com/dmitrymomot/is/pkg/fn"
)

// CardNumber validates a payment card number: digit count and Luhn checksum.
// Spaces and hyphens between digits are ignored.
func CardNumber(field, value string) Rule {
	return Rule{
		Check: func() bool { return card.Valid(value) },
		Error: newError(field, "must be a valid card number", "validation.card_number", nil),
	}
}

// CardIssuer validates that value is a valid card number issued by any of
// the given issuers. With no issuers the rule never passes.
func CardIssuer(field, value string, issuers ...card.Issuer) Rule {
	names := fn.Map(issuers, card.Issuer.Name)
	return Rule{
		Check: func() bool {
			return slices.ContainsFunc(issuers, func(issuer card.Issuer) bool {
				return card.Is(value, issuer)
			})
		},
		Error: newError(field, fmt.Sprintf("must be a %s card", strings.Join(names, " or ")), "validation.card_issuer", map[string]any{
			"issuers": names,
		}),
	}
}
