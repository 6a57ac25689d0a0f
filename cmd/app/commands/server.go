package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/ocial123/qr-event-app/internal/app"
	"github.com/ocial123/qr-event-app/internal/config"
	internalHTTP "github.com/ocial123/qr-event-app/internal/http"
)

// RunServer starts the HTTP server with graceful shutdown support.
// Loads configuration, initializes the DI container, and starts the Gin HTTP
// server plus the metrics server when enabled. Blocks until receiving
// SIGINT/SIGTERM or a fatal server error, then drains both servers within the
// DBConnMaxLifetime timeout.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer closeContainer(container, logger)

	// Initializes the whole dependency graph.
	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// Nil when metrics are disabled.
	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	serverErr := make(chan error, 2)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErr <- fmt.Errorf("api server error: %w", err)
		}
	}()

	if metricsServer != nil {
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				serverErr <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	var startupErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case startupErr = <-serverErr:
		logger.Error("server error, initiating shutdown", slog.Any("error", startupErr))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.DBConnMaxLifetime)
	defer shutdownCancel()

	shutdownErr := shutdownServers(shutdownCtx, server, metricsServer)
	if startupErr != nil || shutdownErr != nil {
		return errors.Join(startupErr, shutdownErr)
	}

	return nil
}

// shutdownServers drains the API server and, when running, the metrics server.
func shutdownServers(ctx context.Context, server *internalHTTP.Server, metricsServer *internalHTTP.MetricsServer) error {
	var shutdownErrors []error

	if err := server.Shutdown(ctx); err != nil {
		shutdownErrors = append(shutdownErrors, fmt.Errorf("api server shutdown: %w", err))
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}
