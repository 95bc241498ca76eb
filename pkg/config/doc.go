// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/caarlos0/env/v11 for parsing and github.com/joho/godotenv
// for optional .env files:
//
//	type Config struct {
//	    LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
//	    Output   string     `env:"OUTPUT"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("IS_")); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// Fields whose types implement encoding.TextUnmarshaler, such as slog.Level,
// are decoded with it. Real environment variables always take precedence over
// values from .env files.
package config
