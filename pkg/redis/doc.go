// Package redis connects to an optional Redis server used by isd to share
// rate limit buckets between replicas.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := ratelimiter.NewRedisStore(client)
//	ready := redis.Healthcheck(client)
//
// Errors wrap the go-redis cause with errors.Join, so both the sentinel and
// the underlying error can be matched.
package redis
