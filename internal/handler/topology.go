package handler

import (
	"github.com/deppfellow/mongodb-errors/internal/server"
	"github.com/deppfellow/mongodb-errors/internal/service"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// TopologyHandler exposes read-only server information.
type TopologyHandler struct {
	Handler
	topology *service.TopologyService
}

func NewTopologyHandler(s *server.Server, topology *service.TopologyService) *TopologyHandler {
	return &TopologyHandler{
		Handler:  NewHandler(s),
		topology: topology,
	}
}

// Top returns per-collection usage. On mongos this fails with "no such cmd: top".
func (h *TopologyHandler) Top(c echo.Context, _ *EmptyRequest) (bson.M, error) {
	return h.topology.Top(c.Request().Context())
}

func (h *TopologyHandler) Describe(c echo.Context, _ *EmptyRequest) (*service.Topology, error) {
	return h.topology.Describe(c.Request().Context())
}
