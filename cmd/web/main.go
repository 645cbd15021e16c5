package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ressKim-io/NewsGuard/internal/adapter/client"
	"github.com/ressKim-io/NewsGuard/internal/adapter/http/router"
	"github.com/ressKim-io/NewsGuard/internal/infrastructure/config"
	"github.com/ressKim-io/NewsGuard/internal/infrastructure/logger"
	"github.com/ressKim-io/NewsGuard/internal/infrastructure/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Prediction service client
	predictClient := client.NewPredictClient(cfg.Predictor.BaseURL, cfg.Predictor.Timeout)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := predictClient.Ping(pingCtx); err != nil {
		log.Warn("Prediction service unreachable, form will report connection errors",
			zap.String("base_url", cfg.Predictor.BaseURL), zap.Error(err))
	} else {
		log.Info("Prediction service reachable", zap.String("base_url", cfg.Predictor.BaseURL))
	}
	pingCancel()

	// Setup router
	r := router.Setup(router.Dependencies{
		Predictor: client.NewPredictionService(predictClient),
		Pinger:    predictClient,
		Recorder:  metrics.NewRecorder(prometheus.DefaultRegisterer),
		Logger:    log,
		Title:     cfg.UI.Title,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Predictor.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
