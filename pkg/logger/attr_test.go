package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/is/pkg/card"
	"github.com/dmitrymomot/is/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		attr  slog.Attr
		key   string
		value any
	}{
		{"request id", logger.RequestID("abc"), "request_id", "abc"},
		{"client ip", logger.ClientIP("192.0.2.1"), "client_ip", "192.0.2.1"},
		{"component", logger.Component("checkapi"), "component", "checkapi"},
		{"predicate", logger.Predicate("visa"), "predicate", "visa"},
		{"result", logger.Result(true), "result", true},
		{"issuer", logger.Issuer(card.MasterCard), "issuer", "mastercard"},
		{"card is masked", logger.Card("4111 1111 1111 1111"), "card", "**** **** **** 1111"},
		{"duration", logger.Duration(time.Second), "duration", time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.key, tc.attr.Key)
			assert.Equal(t, tc.value, tc.attr.Value.Any())
		})
	}
}

func TestEmptyAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))
	assert.True(t, logger.Issuer("").Equal(slog.Attr{}))
}
