package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Resolver finds the client address of a request. Proxy headers are only
// consulted when listed as trusted; otherwise RemoteAddr is used.
type Resolver struct {
	headers []string
}

// New returns a Resolver trusting headers in priority order. Header names
// are canonicalized and blanks are skipped.
func New(headers ...string) *Resolver {
	trusted := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			trusted = append(trusted, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{headers: trusted}
}

// IP returns the normalized client address, or "" when none is valid.
// Comma-separated header values yield their last valid entry: proxies append
// the peer they saw, so everything to its left came from the client.
func (res *Resolver) IP(r *http.Request) string {
	for _, name := range res.headers {
		if ip := lastIP(r.Header.Values(name)); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// Key returns a function suitable as a rate limiter key.
func (res *Resolver) Key() func(*http.Request) string {
	return res.IP
}

// lastIP scans header lines and their comma-separated entries from the right.
func lastIP(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		entries := strings.Split(lines[i], ",")
		for j := len(entries) - 1; j >= 0; j-- {
			if ip := parseIP(entries[j]); ip != "" {
				return ip
			}
		}
	}
	return ""
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
