// Package v1 exposes the conversion core as a JSON API. Handlers own no
// state: every response is recomputed from the request's plain inputs.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/zonemeet/zonemeet/internal/profile"
	"github.com/zonemeet/zonemeet/plugin/nlbridge"
	"github.com/zonemeet/zonemeet/server/middleware"
)

// APIV1Service wires the core services into the echo router.
type APIV1Service struct {
	Profile *profile.Profile
	Bridge  nlbridge.Bridge

	limiter *middleware.RateLimiter
}

// NewAPIV1Service creates a new API service.
func NewAPIV1Service(p *profile.Profile, bridge nlbridge.Bridge) *APIV1Service {
	return &APIV1Service{
		Profile: p,
		Bridge:  bridge,
		limiter: middleware.NewRateLimiter(10, 20),
	}
}

// RegisterRoutes registers all v1 routes on the echo instance.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1", s.limiter.Middleware())

	g.GET("/timezones", s.ListTimezones)
	g.GET("/presets", s.ListPresets)
	g.POST("/convert", s.Convert)
	g.POST("/overlap", s.Overlap)
	g.POST("/parse", s.ParseNaturalLanguage)
	g.GET("/metrics", s.SystemMetrics)
}
