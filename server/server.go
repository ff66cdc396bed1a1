// Package server hosts the echo HTTP server for the zonemeet API.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/zonemeet/zonemeet/internal/profile"
	"github.com/zonemeet/zonemeet/plugin/nlbridge"
	apiv1 "github.com/zonemeet/zonemeet/server/router/api/v1"
	"github.com/zonemeet/zonemeet/server/timezone"
)

// Server bundles the echo instance with its services.
type Server struct {
	Profile *profile.Profile

	echoServer *echo.Echo
	apiService *apiv1.APIV1Service
}

// NewServer creates the HTTP server and wires the API routes.
func NewServer(p *profile.Profile) (*Server, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid profile")
	}
	if !timezone.IsValidTimezone(p.DefaultTimezone) {
		return nil, errors.Errorf("invalid default timezone %q", p.DefaultTimezone)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	bridge := nlbridge.NewService(&nlbridge.Config{
		Enabled:    p.IsAIEnabled(),
		APIKey:     p.AIAPIKey,
		BaseURL:    p.AIBaseURL,
		Model:      p.AIModel,
		MaxRetries: p.AIMaxRetry,
		Timeout:    p.AITimeout,
	})

	apiService := apiv1.NewAPIV1Service(p, bridge)
	apiService.RegisterRoutes(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	return &Server{
		Profile:    p,
		echoServer: e,
		apiService: apiService,
	}, nil
}

// Echo exposes the underlying echo instance, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echoServer
}

// Start begins serving and blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	addr := s.Profile.ListenAddr()
	slog.Info("server started",
		slog.String("addr", addr),
		slog.String("mode", s.Profile.Mode),
		slog.Bool("ai_enabled", s.Profile.IsAIEnabled()))

	if err := s.echoServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server")
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown http server")
	}

	slog.Info("server stopped")
	return nil
}
