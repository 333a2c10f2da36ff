package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Aixtrade/nothing/internal/app"
	"github.com/Aixtrade/nothing/internal/config"
	"github.com/Aixtrade/nothing/internal/infrastructure/observability/logging"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(&cfg.Logging)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting nothing api",
		zap.String("env", cfg.App.Env),
		zap.String("host", cfg.Server.HTTP.Host),
		zap.Int("port", cfg.Server.HTTP.Port),
		zap.Bool("admin", cfg.Server.Admin.Enabled),
		zap.Bool("grpc", cfg.Server.GRPC.Enabled),
	)

	application := app.New(cfg, logger)
	if err := application.Listen(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("server stopped")
}
