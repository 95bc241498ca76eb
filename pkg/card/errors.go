package card

import "errors"

// ErrUnknownIssuer is returned by ParseIssuer for identifiers outside the issuer table.
var ErrUnknownIssuer = errors.New("unknown card issuer")
