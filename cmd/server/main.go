package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bengobox/clock-service/internal/app"
	"github.com/bengobox/clock-service/internal/config"
	"github.com/bengobox/clock-service/internal/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.App.Environment, cfg.App.ServiceName)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck // best effort

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Error("clock service stopped", logger.ZapError(err))
		_ = zapLogger.Sync()
		os.Exit(1)
	}
}

// run serves until SIGINT/SIGTERM or a server error, then drains connections
// within the configured shutdown timeout.
func run(cfg *config.Config, zapLogger *zap.Logger) error {
	application, err := app.New(cfg, zapLogger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() { serveErr <- application.Run() }()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		zapLogger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serveErr
}
