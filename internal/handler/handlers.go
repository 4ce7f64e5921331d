package handler

import (
	"github.com/deppfellow/mongodb-errors/internal/server"
	"github.com/deppfellow/mongodb-errors/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
//
// This keeps router setup clean: one object is passed around instead of many.
// Handlers represent the HTTP layer: parse input, validate, call services,
// and return responses.
type Handlers struct {
	Health      *HealthHandler     // Health serves the status endpoint.
	Collections *CollectionHandler // Collections manages collections and indexes.
	Topology    *TopologyHandler   // Topology reports server information.
}

// NewHandlers constructs the handler container.
//
// Parameters:
// - s: application container (logger/config/db) needed by handlers
// - services: business layer container
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		Collections: NewCollectionHandler(s, services.Collections),
		Topology:    NewTopologyHandler(s, services.Topology),
	}
}
