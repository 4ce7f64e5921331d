package service

import (
	"context"

	"github.com/deppfellow/mongodb-errors/internal/mongoerr"
	"github.com/deppfellow/mongodb-errors/internal/server"
	"go.mongodb.org/mongo-driver/bson"
)

// AdminStore runs server-wide commands. *repository.ServerRepository implements it.
type AdminStore interface {
	Top(ctx context.Context) (bson.M, error)
	ReplSetStatus(ctx context.Context) (bson.M, error)
}

// Topology kinds reported by TopologyService.Describe.
const (
	TopologyReplicaSet = "replicaset"
	TopologyStandalone = "standalone"
	TopologyRouter     = "router"
	TopologyUnknown    = "unknown"
)

// Topology describes the deployment the API is connected to.
type Topology struct {
	Kind       string `json:"kind"`
	SetName    string `json:"set_name,omitempty"`
	Authorized bool   `json:"authorized"`
}

// TopologyService answers questions about the connected deployment.
type TopologyService struct {
	server *server.Server
	store  AdminStore
}

func NewTopologyService(s *server.Server, store AdminStore) *TopologyService {
	return &TopologyService{server: s, store: store}
}

// Top returns the output of the top command.
func (ts *TopologyService) Top(ctx context.Context) (bson.M, error) {
	if ts.store == nil {
		return nil, errNoDatabase()
	}
	return ts.store.Top(ctx)
}

// Describe runs replSetGetStatus and reads the deployment kind from the
// answer. Refusals that only tell us what the server is are not errors.
func (ts *TopologyService) Describe(ctx context.Context) (*Topology, error) {
	if ts.store == nil {
		return nil, errNoDatabase()
	}

	status, err := ts.store.ReplSetStatus(ctx)
	switch {
	case err == nil:
		setName, _ := status["set"].(string)
		return &Topology{Kind: TopologyReplicaSet, SetName: setName, Authorized: true}, nil
	case mongoerr.IsRouter(err):
		return &Topology{Kind: TopologyRouter, Authorized: true}, nil
	case mongoerr.IsNotReplicaset(err):
		return &Topology{Kind: TopologyStandalone, Authorized: true}, nil
	case mongoerr.IsNotAuthorized(err):
		ts.server.Logger.Warn().Err(err).Msg("not authorized to read replica set status")
		return &Topology{Kind: TopologyUnknown}, nil
	default:
		return nil, err
	}
}
