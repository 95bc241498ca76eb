package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/is/pkg/card"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the resolved client address. An empty ip yields an empty
// Attr.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Predicate records a registry predicate name under the key "predicate".
func Predicate(name string) slog.Attr {
	return slog.String("predicate", name)
}

// Result records a predicate outcome under the key "result".
func Result(ok bool) slog.Attr {
	return slog.Bool("result", ok)
}

// Issuer records a card issuer under the key "issuer". The zero issuer
// yields an empty Attr.
func Issuer(issuer card.Issuer) slog.Attr {
	if issuer == "" {
		return slog.Attr{}
	}
	return slog.String("issuer", issuer.String())
}

// Card records a card number under the key "card" with every digit except
// the last four masked. Raw card numbers must never reach the logs.
func Card(number string) slog.Attr {
	return slog.String("card", card.Mask(number))
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
