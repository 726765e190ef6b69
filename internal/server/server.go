// Package server provides the HTTP query surface over a tree catalog. The
// hierarchy engine itself has no network boundary; this layer is one of its
// callers.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/fyrsmithlabs/arbor/internal/catalog"
)

// Server exposes catalog queries over HTTP.
type Server struct {
	echo    *echo.Echo
	catalog *catalog.Catalog
	logger  *zap.Logger
	config  *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host      string
	Port      int
	RateLimit float64 // requests per second, 0 disables limiting
	RateBurst int
}

// NewServer creates a new HTTP server over the given catalog.
func NewServer(cat *catalog.Catalog, logger *zap.Logger, cfg *Config) (*Server, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 9091,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if cfg.RateLimit > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				if !limiter.Allow() {
					return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
				}
				return next(c)
			}
		})
	}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:    e,
		catalog: cat,
		logger:  logger,
		config:  cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.echo.Group("/api/v1")
	v1.GET("/trees", s.handleListTrees)
	v1.GET("/trees/:tree/metric", s.handleMetric)
	v1.GET("/trees/:tree/find", s.handleFind)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting query server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down query server")
	return s.echo.Shutdown(ctx)
}
