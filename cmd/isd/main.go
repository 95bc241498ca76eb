// Command isd serves the predicate registry and card checks over HTTP.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/is/pkg/checkapi"
	"github.com/dmitrymomot/is/pkg/clientip"
	"github.com/dmitrymomot/is/pkg/config"
	"github.com/dmitrymomot/is/pkg/httpserver"
	"github.com/dmitrymomot/is/pkg/logger"
	"github.com/dmitrymomot/is/pkg/ratelimiter"
	"github.com/dmitrymomot/is/pkg/redis"
	"github.com/dmitrymomot/is/pkg/validator"
)

type appConfig struct {
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"json"`
	Env       string        `env:"ENV" envDefault:"production"`
	// TrustedHeaders lists proxy headers carrying the client address, in
	// priority order. Empty means RemoteAddr only.
	TrustedHeaders []string `env:"TRUSTED_HEADERS" envSeparator:","`
	HTTP           httpserver.Config
	RateLimit      ratelimiter.Config
	// Redis, when configured, holds rate limit buckets shared by replicas.
	Redis redis.Config
}

func main() {
	os.Exit(run())
}

func run() int {
	var cfg appConfig
	if err := config.Load(&cfg, config.WithPrefix("IS_")); err != nil {
		slog.Error("failed to load config", logger.Error(err))
		return 1
	}
	if err := validator.Apply(
		validator.OneOf("IS_LOG_FORMAT", cfg.LogFormat, logger.FormatText, logger.FormatJSON),
	); err != nil {
		slog.Error("invalid config", logger.Error(err))
		return 1
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "isd"),
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithContextExtractors(checkapi.RequestIDExtractor),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []checkapi.Option{checkapi.WithClientIP(clientip.New(cfg.TrustedHeaders...))}
	if cfg.RateLimit.Enabled() {
		var store ratelimiter.Store
		if cfg.Redis.Enabled() {
			client, err := redis.Connect(ctx, cfg.Redis)
			if err != nil {
				log.Error("failed to connect to redis", logger.Error(err))
				return 1
			}
			defer func() { _ = client.Close() }()

			store = ratelimiter.NewRedisStore(client)
			opts = append(opts, checkapi.WithReadinessChecks(redis.Healthcheck(client)))
		} else {
			mem := ratelimiter.NewMemoryStore()
			go mem.Run(ctx, time.Minute)
			store = mem
		}

		limiter, err := ratelimiter.New(store, cfg.RateLimit)
		if err != nil {
			log.Error("invalid rate limit config", logger.Error(err))
			return 1
		}
		opts = append(opts, checkapi.WithRateLimiter(limiter))
	}

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, checkapi.New(log, opts...).Router()); err != nil {
		log.Error("server exited", logger.Error(err))
		return 1
	}
	return 0
}
