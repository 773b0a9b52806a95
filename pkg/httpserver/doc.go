// Package httpserver wraps net/http.Server with option-based configuration,
// signal-aware startup and graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM is received, or
// the listener fails; in-flight requests are drained within the configured
// shutdown timeout.
package httpserver
