package is

import (
	"encoding/json"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/is/pkg/dispatch"
)

// maxEmailLength caps the whole address: 64 for the local part, 255 for the
// domain, plus the separator, rounded as in RFC 3696 errata.
const maxEmailLength = 320

var (
	hexColorRegex  = regexp.MustCompile(`^#?(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	alphaWordRegex = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// Email reports whether v is a bare email address (no display name).
func Email(v any) bool {
	return text(v, func(s string) bool {
		if strings.TrimSpace(s) == "" || len(s) > maxEmailLength {
			return false
		}

		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return false
		}

		local, domain, ok := strings.Cut(addr.Address, "@")
		if !ok || local == "" {
			return false
		}
		if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return false
		}
		for part := range strings.SplitSeq(domain, ".") {
			if part == "" {
				return false
			}
		}
		return true
	})
}

// URL reports whether v is an http or https address with a dotted host.
// The scheme may be omitted: "example.com/path" is accepted.
func URL(v any) bool {
	return text(v, func(s string) bool {
		if s == "" || strings.ContainsAny(s, " \t\r\n") {
			return false
		}
		raw := s
		if !strings.Contains(s, "://") {
			raw = "http://" + s
		}

		u, err := url.ParseRequestURI(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return false
		}

		host := u.Hostname()
		return strings.Contains(host, ".") && !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
	})
}

// HexColor reports whether v is a three or six digit hex color, with or
// without the leading '#'.
func HexColor(v any) bool {
	return text(v, hexColorRegex.MatchString)
}

// JSON reports whether v is a string holding a valid JSON document.
func JSON(v any) bool {
	return text(v, func(s string) bool {
		return json.Valid([]byte(s))
	})
}

// AlphaWord reports whether v is a non-empty string of ASCII letters.
func AlphaWord(v any) bool {
	return text(v, alphaWordRegex.MatchString)
}

// UUID reports whether v is a canonical hyphenated UUID string.
func UUID(v any) bool {
	return text(v, func(s string) bool {
		// Fast rejection before parsing: uuid.Parse also accepts urn and
		// braced forms which are not canonical.
		if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
}

// text runs check on the underlying string of v; non-text values are false.
func text(v any, check func(string) bool) bool {
	ok, err := dispatch.IfText(v, check)
	return err == nil && ok
}
