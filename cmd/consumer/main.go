package main

import (
	"context"
	"os/signal"
	"syscall"

	"geo-attend/internal/app"
	"geo-attend/internal/bootstrap"
	"geo-attend/internal/config"
	"geo-attend/internal/shared/audit"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg, audit.NewStdoutLogger()); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
