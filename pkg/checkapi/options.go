package checkapi

import (
	"context"

	"github.com/dmitrymomot/is/pkg/clientip"
	"github.com/dmitrymomot/is/pkg/ratelimiter"
)

type Option func(*Handler)

// WithRateLimiter limits /v1 requests per client address. A nil limiter is
// ignored.
func WithRateLimiter(l *ratelimiter.Limiter) Option {
	return func(h *Handler) {
		if l != nil {
			h.limiter = l
		}
	}
}

// WithClientIP sets how client addresses are resolved. The default trusts
// no proxy headers.
func WithClientIP(res *clientip.Resolver) Option {
	return func(h *Handler) {
		if res != nil {
			h.clientIP = res
		}
	}
}

// WithReadinessChecks are run by GET /readyz.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(h *Handler) {
		h.readiness = append(h.readiness, checks...)
	}
}
