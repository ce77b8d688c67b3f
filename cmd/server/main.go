package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kleos-intake/internal/auth"
	"kleos-intake/internal/config"
	"kleos-intake/internal/handlers"
	"kleos-intake/internal/kleos"
	"kleos-intake/internal/metrics"
	"kleos-intake/internal/submission"

	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting Kleos intake service")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Register metrics
	metrics.Init()

	// Shared outbound HTTP client; every remote call is bounded by the
	// configured timeout.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	if cfg.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled")
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	// Initialize token source
	tokens := auth.NewTokenSource(auth.Credentials{
		TokenURL:     cfg.TokenURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       cfg.Scopes,
	}, httpClient, logger)

	// Initialize Kleos client and orchestrator
	client := kleos.NewClient(cfg.APIBase, tokens, httpClient, logger)
	orchestrator := submission.NewOrchestrator(client, logger)

	// Initialize handlers
	directoryHandler := handlers.NewDirectoryHandler(client, logger)
	submitHandler := handlers.NewSubmitHandler(orchestrator, logger)

	// Setup router
	router := SetupRouter(directoryHandler, submitHandler, logger)

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
