package redis

import "time"

// Config describes an optional Redis connection. Tags are relative to the
// IS_ prefix.
type Config struct {
	// URL has the form redis://:password@localhost:6379/0. Empty disables
	// Redis.
	URL            string        `env:"REDIS_URL"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

func (c Config) Enabled() bool {
	return c.URL != ""
}
