package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/salon/internal/app"
	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/logging"
	"github.com/nfrund/salon/internal/server"
)

func main() {
	// config.New loads .env first so LOG_FORMAT and LOG_LEVEL apply.
	cfg, err := config.New()
	logging.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	injector := app.NewContainer(cfg)
	defer injector.Shutdown()

	s, err := server.New(cfg, injector, app.NewModules())
	if err != nil {
		return err
	}
	if err := app.Start(ctx, injector); err != nil {
		return err
	}
	if err := s.Boot(ctx); err != nil {
		return err
	}
	return s.Start(ctx)
}
