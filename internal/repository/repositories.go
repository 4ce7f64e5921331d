package repository

import (
	"github.com/deppfellow/mongodb-errors/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Collections *CollectionRepository
	Server      *ServerRepository
}

// NewRepositories constructs the repository container.
//
// Parameter:
// - s: application container (the MongoDB client lives on s.DB)
//
// A server without a database (tests) gets repositories without a handle;
// the service layer never reaches them in that case.
func NewRepositories(s *server.Server) *Repositories {
	repos := &Repositories{}
	if s.DB == nil {
		return repos
	}

	repos.Collections = NewCollectionRepository(s.DB.DB)
	repos.Server = NewServerRepository(s.DB.Client)
	return repos
}
