// Package server exposes a loaded group cache as a read-only JSON API.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/wrotag/internal/core/ports"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// Server wraps the Echo server.
type Server struct {
	echo    *echo.Echo
	handler *Handler
}

// New creates the HTTP server for cache. Metrics are registered on a registry
// owned by the server and served on /metrics.
func New(cache ports.GroupCache, logger ports.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	registry := prometheus.NewRegistry()
	handler := NewHandler(cache, logger, NewMetrics(registry))

	e.Use(middleware.Recover())

	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	e.GET("/groups", handler.ListGroups)
	e.GET("/groups/:name", handler.GetGroup)

	return &Server{
		echo:    e,
		handler: handler,
	}
}

// Start serves on addr until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start(addr string) error {
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ServeHTTP implements the http.Handler interface, allowing Server to be used with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
