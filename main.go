package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/marklabs/mark/internal/auth"
	"github.com/marklabs/mark/internal/config"
	"github.com/marklabs/mark/internal/gateway"
	"github.com/marklabs/mark/internal/service"
	"github.com/marklabs/mark/internal/session"
	"github.com/marklabs/mark/internal/store"
	transport "github.com/marklabs/mark/internal/transport/http"
	"github.com/marklabs/mark/policy"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting mark server",
		zap.Int("http_port", cfg.HTTPPort),
		zap.String("database", cfg.DatabaseURL),
		zap.String("model", cfg.GeminiModel))

	ctx := context.Background()

	// Durable storage
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize store", zap.Error(err))
	}
	defer db.Close()

	// Session state, loaded from durable storage
	sessions, err := session.New(ctx, db)
	if err != nil {
		logger.Fatal("failed to load session state", zap.Error(err))
	}

	// Authentication gate
	gate := auth.NewGate(sessions)

	// AI gateway
	gw, err := gateway.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout)
	if err != nil {
		logger.Fatal("failed to initialize gateway", zap.Error(err))
	}

	// Access policy engine
	engine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		logger.Fatal("failed to initialize policy engine", zap.Error(err))
	}

	svc := service.New(cfg, sessions, gate, gw, logger)

	server := transport.NewServer(svc, engine)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	logger.Info("api started", zap.Int("port", cfg.HTTPPort))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("failed to shutdown server gracefully", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		cfg.Level = zap.NewAtomicLevel()
	}
	return cfg.Build()
}
