package httpserver

import "log/slog"

// Option configures the HTTP server.
type Option func(*Server)

// WithLogger sets the logger for lifecycle events. Nil keeps the discarding
// default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}
