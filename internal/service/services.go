package service

import (
	"github.com/deppfellow/mongodb-errors/internal/repository"
	"github.com/deppfellow/mongodb-errors/internal/server"
)

// Services groups the business layer.
type Services struct {
	Collections *CollectionService
	Topology    *TopologyService
}

// NewService wires every service to its repository.
//
// Repositories are nil when the server runs without a database. The nil
// check keeps a nil *Repository from turning into a non-nil interface.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var collections CollectionStore
	if repos.Collections != nil {
		collections = repos.Collections
	}

	var admin AdminStore
	if repos.Server != nil {
		admin = repos.Server
	}

	return &Services{
		Collections: NewCollectionService(s, collections),
		Topology:    NewTopologyService(s, admin),
	}, nil
}
