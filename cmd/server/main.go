package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/baldimario/promptly/internal/router"
	"github.com/baldimario/promptly/internal/validators"
	"github.com/baldimario/promptly/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware, routes and dependencies
	router.SetupMiddleware(e)
	if err := router.SetupRoutes(e, db.Postgres, cfg, sugar); err != nil {
		sugar.Fatalw("failed to set up routes", "error", err)
	}

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("server stopped", "error", err)
		}
	}()
	sugar.Infow("server started", "port", cfg.Port, "env", cfg.Env)

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Infow("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		sugar.Errorw("forced shutdown", "error", err)
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
