package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/user/cultivation-life/config"
	"github.com/user/cultivation-life/internal/game"
	"github.com/user/cultivation-life/internal/handlers"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Set up logger
	logger := setupLogger(cfg.Server.LogLevel)
	defer logger.Sync()

	// Load game data
	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load game data", zap.Error(err))
	}

	// Initialize game manager
	gameManager := game.NewGameManager(cfg, catalog)
	gameManager.SetLogger(logger.Named("game"))

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handlers.NewRouter(cfg, gameManager, logger.Named("http")),
	}

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	waitForShutdown(server, logger)
}

func setupLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, _ := config.Build()
	return logger
}

func loadCatalog(cfg config.Config, logger *zap.Logger) (*game.Catalog, error) {
	dataLoader := game.NewDataLoader(cfg.Game.DataDir)

	catalog, err := dataLoader.LoadCatalog(cfg.Game.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	logger.Info("Loaded events",
		zap.String("file", cfg.Game.CatalogFile),
		zap.Int("count", catalog.Len()))

	return catalog, nil
}

func waitForShutdown(server *http.Server, logger *zap.Logger) {
	// Set up channel for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	logger.Info("Shutting down")
}
