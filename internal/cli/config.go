package cli

import (
	"log/slog"

	"github.com/dmitrymomot/is/pkg/logger"
)

// Config is read from the environment with the IS_ prefix.
type Config struct {
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"text"`
	Env       string        `env:"ENV" envDefault:"development"`
	// Output is the default for -o. Empty means text on a terminal, json
	// otherwise.
	Output string `env:"OUTPUT"`
}
