package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pitchconnect/standings-engine/internal/app"
	"github.com/pitchconnect/standings-engine/internal/config"
	"github.com/pitchconnect/standings-engine/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("run app", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
