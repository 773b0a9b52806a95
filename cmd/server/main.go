package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pairpad/pairpad/internal/api"
	"github.com/pairpad/pairpad/internal/relay"
	"github.com/pairpad/pairpad/internal/session"
	"github.com/pairpad/pairpad/pkg/config"
	"github.com/pairpad/pairpad/pkg/httpserver"
	"github.com/pairpad/pairpad/pkg/logger"
)

type appConfig struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Server httpserver.Config
	Relay  relay.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Env, "pairpad"))
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := session.New[*relay.Member]()
	rl := relay.New(store,
		relay.WithConfig(cfg.Relay),
		relay.WithLogger(log),
	)
	router := api.NewRouter(store, rl.Handler(), log)

	srv := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server started", slog.String("addr", cfg.Server.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped", slog.Int("sessions", store.Len()))
		}),
	)

	if err := srv.Run(ctx, router); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}
