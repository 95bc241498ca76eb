package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state per key. A negative remaining count means the
// request must be denied.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
