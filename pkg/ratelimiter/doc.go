// Package ratelimiter implements a token bucket limiter with an in-memory
// store and chi-compatible HTTP middleware.
//
// Each key owns a bucket holding up to Config.Capacity tokens. Every
// Config.RefillInterval adds Config.RefillRate tokens back. A request costs
// one token; when the bucket is empty the request is denied and the bucket
// is left as is.
//
//	store := ratelimiter.NewMemoryStore()
//	go store.Run(ctx, time.Minute)
//
//	limiter, err := ratelimiter.New(store, ratelimiter.Config{
//		Capacity:       120,
//		RefillRate:     2,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(limiter, clientip.Key(), onError))
//
// MemoryStore is per process. RedisStore keeps buckets in Redis, updated by
// a single Lua script per request, so replicas share one budget per key.
//
// Denied requests reach the ErrorFunc with an error wrapping ErrLimited and
// a Retry-After header already set.
package ratelimiter
