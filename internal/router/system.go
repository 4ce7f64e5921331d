package router

import (
	"github.com/deppfellow/mongodb-errors/internal/handler"
	"github.com/deppfellow/mongodb-errors/internal/metrics"
	"github.com/deppfellow/mongodb-errors/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers "system" endpoints that are not part of business logic.
//
// Routes include:
//  1. Health endpoint
//  2. Prometheus metrics (decode counters), when enabled
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)

	if obs := s.Config.Observability; obs != nil && obs.Metrics.Enabled {
		r.GET(obs.Metrics.Path, echo.WrapHandler(metrics.HTTPHandler(s.Metrics)))
	}
}
