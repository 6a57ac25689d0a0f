package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	adminHTTP "github.com/ocial123/qr-event-app/internal/admin/http"
	tokenHTTP "github.com/ocial123/qr-event-app/internal/token/http"
)

// RouterConfig carries the handlers, middleware, and options needed to build
// the API router.
type RouterConfig struct {
	Logger         *slog.Logger
	TokenHandler   *tokenHTTP.TokenHandler
	SessionHandler *adminHTTP.SessionHandler

	// AuthenticationMiddleware gates the admin-only routes.
	AuthenticationMiddleware gin.HandlerFunc

	// LoginRateLimitMiddleware protects the login route; nil disables it.
	LoginRateLimitMiddleware gin.HandlerFunc

	CORSEnabled      bool
	CORSAllowOrigins string

	// ReadyCheck reports whether downstream dependencies are reachable.
	ReadyCheck func(ctx context.Context) error
}

// NewRouter builds the gin engine with all API routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(cfg.Logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, cfg.Logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		if cfg.ReadyCheck != nil {
			if err := cfg.ReadyCheck(c.Request.Context()); err != nil {
				cfg.Logger.Warn("readiness check failed", slog.Any("error", err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	v1 := router.Group("/v1")

	// Public routes: login plus the status/qrcode pair scanned by attendees.
	login := v1.Group("/admin")
	if cfg.LoginRateLimitMiddleware != nil {
		login.Use(cfg.LoginRateLimitMiddleware)
	}
	login.POST("/login", cfg.SessionHandler.LoginHandler)

	v1.GET("/tokens/:token/status", cfg.TokenHandler.StatusHandler)
	v1.GET("/tokens/:token/qrcode", cfg.TokenHandler.QRCodeHandler)

	// Admin routes behind the session gate.
	authorized := v1.Group("")
	authorized.Use(cfg.AuthenticationMiddleware)
	authorized.POST("/tokens", cfg.TokenHandler.IssueTokensHandler)
	authorized.POST("/tokens/redeem", cfg.TokenHandler.RedeemTokenHandler)
	authorized.GET("/dashboard", cfg.TokenHandler.DashboardHandler)

	return router
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new API HTTP server around a built router.
func NewServer(
	host string,
	port int,
	logger *slog.Logger,
	router *gin.Engine,
) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
