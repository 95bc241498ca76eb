// Package httpserver runs an http.Handler with configured timeouts, lifecycle
// logging and graceful shutdown on context cancellation.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    // errors.Is(err, httpserver.ErrStart)
//	}
//
// Signal handling is left to the caller. HealthCheckHandler provides the
// liveness and readiness probe handler.
package httpserver
