package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"innkeep/internal/config"
	"innkeep/internal/consumers"
	"innkeep/internal/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// Separate client ID so the API and sweeper can share a cluster
	cfg.NATS.ClientID = "innkeep-sweeper"

	slog.Info("Starting sweeper service...")

	consumerService, err := consumers.NewConsumerService(cfg)
	if err != nil {
		logger.Fatal("Failed to create consumer service", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumerService.Start(ctx); err != nil {
		logger.Fatal("Failed to start consumers", "error", err)
	}

	slog.Info("Sweeper service started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down sweeper service...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := consumerService.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}

	slog.Info("Sweeper service stopped")
}
