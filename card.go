package is

import "github.com/dmitrymomot/is/pkg/card"

// CardNumber reports whether v is a string holding a plausible payment card
// number: 12 to 19 digits once separators are dropped, with a valid Luhn
// checksum. See package card for details.
func CardNumber(v any) bool { return card.Valid(v) }

func Visa(v any) bool            { return card.IsVisa(v) }
func MasterCard(v any) bool      { return card.IsMasterCard(v) }
func AmericanExpress(v any) bool { return card.IsAmericanExpress(v) }
func Discover(v any) bool        { return card.IsDiscover(v) }
func DinersClub(v any) bool      { return card.IsDinersClub(v) }
func JCB(v any) bool             { return card.IsJCB(v) }
func Maestro(v any) bool         { return card.IsMaestro(v) }
