package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by Load when no WithEnvFiles option is given.
// A missing default file is not an error.
const DefaultEnvFile = ".env"

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix   string
	files    []string
	explicit bool
}

// WithPrefix prepends prefix to every env tag, so `env:"OUTPUT"` is read from
// PREFIX+"OUTPUT".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles replaces the default .env file with the given files. Missing
// files are reported as errors. Variables already present in the process
// environment win over file values; among files, the first one wins.
// Calling it with no files disables .env loading.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = files
		o.explicit = true
	}
}

// Load parses environment variables into the struct pointed to by v using
// its `env` and `envDefault` tags.
//
// Example:
//
//	type Config struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("IS_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{files: []string{DefaultEnvFile}}
	for _, opt := range opts {
		opt(&o)
	}

	if err := loadEnvFiles(o); err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(o options) error {
	if len(o.files) == 0 {
		return nil
	}
	err := godotenv.Load(o.files...)
	if err == nil {
		return nil
	}
	if !o.explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.Join(ErrLoadingEnvFile, err)
}
