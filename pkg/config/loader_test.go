package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/is/pkg/config"
)

type appConfig struct {
	Name     string        `env:"NAME" envDefault:"isd"`
	Level    slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
	Tags     []string      `env:"TAGS" envSeparator:","`
	Priority string        `env:"PRIORITY"`
}

type requiredConfig struct {
	Token string `env:"CFGTEST_REQUIRED_TOKEN,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg appConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_DEFAULTS_")))

	assert.Equal(t, "isd", cfg.Name)
	assert.Equal(t, slog.LevelInfo, cfg.Level)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.Tags)
}

func TestLoad_Prefix(t *testing.T) {
	t.Setenv("CFGTEST_PREFIX_NAME", "cli")
	t.Setenv("CFGTEST_PREFIX_LOG_LEVEL", "debug")
	t.Setenv("CFGTEST_PREFIX_TIMEOUT", "250ms")
	t.Setenv("CFGTEST_PREFIX_TAGS", "a,b")
	t.Setenv("NAME", "ignored without prefix")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_PREFIX_")))

	assert.Equal(t, "cli", cfg.Name)
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("CFGTEST_BAD_TIMEOUT", "soon")

	var cfg appConfig
	err := config.Load(&cfg, config.WithPrefix("CFGTEST_BAD_"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Required(t *testing.T) {
	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("CFGTEST_REQUIRED_TOKEN", "secret")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "secret", cfg.Token)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Setenv("CFGTEST_FILE_PRIORITY", "process")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg,
		config.WithPrefix("CFGTEST_FILE_"),
		config.WithEnvFiles("testdata/app.env"),
	))

	assert.Equal(t, "from-file", cfg.Name)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "process", cfg.Priority, "process environment wins over the file")
}

func TestLoad_MissingEnvFile(t *testing.T) {
	var cfg appConfig
	err := config.Load(&cfg, config.WithEnvFiles("testdata/missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	require.NoError(t, config.Load(&cfg, config.WithEnvFiles()), "no files disables loading")
}

func TestLoad_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[appConfig](nil), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg appConfig
		config.MustLoad(&cfg, config.WithPrefix("CFGTEST_MUST_"))
	})

	t.Setenv("CFGTEST_MUSTBAD_LOG_LEVEL", "loud")
	assert.Panics(t, func() {
		var cfg appConfig
		config.MustLoad(&cfg, config.WithPrefix("CFGTEST_MUSTBAD_"))
	})
}
