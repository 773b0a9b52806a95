// Package logger provides a small factory around log/slog with consistent
// defaults across environments.
//
// Production defaults are JSON output at INFO level; development switches to
// text output at DEBUG level:
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, "pairpad"))
//	log.Info("server started", slog.String("addr", cfg.Addr))
//
// Attribute helpers keep log keys consistent across packages:
//
//	log.Error("join failed", logger.Error(err), logger.SessionID(id))
package logger
