package card

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/is/pkg/dispatch"
	"github.com/dmitrymomot/is/pkg/fn"
)

// Issuer identifies a card network.
type Issuer string

const (
	AmericanExpress Issuer = "american_express"
	Visa            Issuer = "visa"
	Maestro         Issuer = "maestro"
	JCB             Issuer = "jcb"
	DinersClub      Issuer = "diners_club"
	MasterCard      Issuer = "mastercard"
	Discover        Issuer = "discover"
)

type issuerPattern struct {
	issuer Issuer
	name   string
	prefix *regexp.Regexp
}

// issuers is the issuer identification table. Patterns are anchored at the
// start of the raw candidate string, before any digit stripping, and are tried
// in this order by Classify.
var issuers = [...]issuerPattern{
	{AmericanExpress, "American Express", regexp.MustCompile(`^3[47]`)},
	{Visa, "Visa", regexp.MustCompile(`^4`)},
	{Maestro, "Maestro", regexp.MustCompile(`^(?:6|50|5[6-8])`)},
	{JCB, "JCB", regexp.MustCompile(`^(?:3088|3096|3112|3158|3337|35[2-8][0-9])`)},
	{DinersClub, "Diners Club", regexp.MustCompile(`^(?:36|30[0-5]|3095|3[89])`)},
	{MasterCard, "MasterCard", regexp.MustCompile(`^(?:5[1-5]|2[2-7])`)},
	{Discover, "Discover", regexp.MustCompile(`^6[045]`)},
}

func (i Issuer) String() string {
	return string(i)
}

// Name returns the display name of the issuer, or the raw value for issuers
// outside the table.
func (i Issuer) Name() string {
	if p, ok := i.pattern(); ok {
		return p.name
	}
	return string(i)
}

func (i Issuer) pattern() (issuerPattern, bool) {
	return fn.Find(issuers[:], func(p issuerPattern) bool { return p.issuer == i })
}

// Issuers returns the known issuers in table order.
func Issuers() []Issuer {
	return fn.Map(issuers[:], func(p issuerPattern) Issuer { return p.issuer })
}

// ParseIssuer resolves an issuer identifier such as "visa" or "diners_club".
func ParseIssuer(s string) (Issuer, error) {
	if p, ok := Issuer(s).pattern(); ok {
		return p.issuer, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIssuer, s)
}

// Is reports whether candidate is a valid card number issued by issuer.
// A number that fails Valid never matches, whatever its prefix.
func Is(candidate any, issuer Issuer) bool {
	p, ok := issuer.pattern()
	if !ok {
		return false
	}
	matched, err := dispatch.IfText(candidate, func(s string) bool {
		return validNumber(s) && p.prefix.MatchString(s)
	})
	return err == nil && matched
}

// Classify returns the first issuer, in table order, whose prefix matches a
// valid candidate. Prefixes overlap (a 6011 number is both Maestro and
// Discover); use Matches to get all of them.
func Classify(candidate any) (Issuer, bool) {
	all := Matches(candidate)
	if len(all) == 0 {
		return "", false
	}
	return all[0], true
}

// Matches returns every issuer whose prefix matches a valid candidate, in
// table order. Invalid candidates match nothing.
func Matches(candidate any) []Issuer {
	found, err := dispatch.IfText(candidate, func(s string) []Issuer {
		if !validNumber(s) {
			return nil
		}
		hits := fn.Filter(issuers[:], func(p issuerPattern, _ int) bool {
			return p.prefix.MatchString(s)
		})
		return fn.Map(hits, func(p issuerPattern) Issuer { return p.issuer })
	})
	if err != nil {
		return nil
	}
	return found
}

func IsAmericanExpress(candidate any) bool { return Is(candidate, AmericanExpress) }
func IsVisa(candidate any) bool            { return Is(candidate, Visa) }
func IsMaestro(candidate any) bool         { return Is(candidate, Maestro) }
func IsJCB(candidate any) bool             { return Is(candidate, JCB) }
func IsDinersClub(candidate any) bool      { return Is(candidate, DinersClub) }
func IsMasterCard(candidate any) bool      { return Is(candidate, MasterCard) }
func IsDiscover(candidate any) bool        { return Is(candidate, Discover) }
