package ratelimiter

import (
	"fmt"
	"net/http"
	"strconv"
)

// KeyFunc extracts the bucket key from a request. An empty key bypasses the
// limiter.
type KeyFunc func(r *http.Request) string

// ErrorFunc writes the response for denied or failed requests. Denials are
// reported as errors wrapping ErrLimited.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

// Middleware limits requests per key and sets the X-RateLimit-* headers.
func Middleware(l *Limiter, key KeyFunc, onError ErrorFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := l.Allow(r.Context(), k)
			if err != nil {
				onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				retry := int(result.RetryAfter().Seconds()) + 1
				h.Set("Retry-After", strconv.Itoa(retry))
				onError(w, r, fmt.Errorf("%w: retry in %ds", ErrLimited, retry))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
