package service

import (
	"context"

	"github.com/deppfellow/mongodb-errors/internal/errs"
	"github.com/deppfellow/mongodb-errors/internal/repository"
	"github.com/deppfellow/mongodb-errors/internal/server"
)

// CollectionStore is the storage the collection service runs on.
// *repository.CollectionRepository implements it.
type CollectionStore interface {
	List(ctx context.Context) ([]repository.CollectionInfo, error)
	Create(ctx context.Context, name string, capped bool, sizeBytes int64) error
	Drop(ctx context.Context, name string) error
	CreateIndex(ctx context.Context, collection string, spec repository.IndexSpec) (string, error)
	DropIndex(ctx context.Context, collection, index string) error
}

// errNoDatabase is returned when the service has no store to talk to.
func errNoDatabase() *errs.HTTPError {
	return errs.NewServerTimeoutError("Database is not connected", false)
}

// CollectionService manages collections and their indexes.
//
// Driver errors are returned as is; turning them into API errors is the
// job of the MongoErrors middleware.
type CollectionService struct {
	server *server.Server
	store  CollectionStore
}

func NewCollectionService(s *server.Server, store CollectionStore) *CollectionService {
	return &CollectionService{server: s, store: store}
}

func (cs *CollectionService) List(ctx context.Context) ([]repository.CollectionInfo, error) {
	if cs.store == nil {
		return nil, errNoDatabase()
	}
	return cs.store.List(ctx)
}

func (cs *CollectionService) Create(ctx context.Context, name string, capped bool, sizeBytes int64) error {
	if cs.store == nil {
		return errNoDatabase()
	}
	if err := cs.store.Create(ctx, name, capped, sizeBytes); err != nil {
		return err
	}

	cs.server.Logger.Info().Str("collection", name).Bool("capped", capped).Msg("collection created")
	return nil
}

func (cs *CollectionService) Drop(ctx context.Context, name string) error {
	if cs.store == nil {
		return errNoDatabase()
	}
	if err := cs.store.Drop(ctx, name); err != nil {
		return err
	}

	cs.server.Logger.Info().Str("collection", name).Msg("collection dropped")
	return nil
}

func (cs *CollectionService) CreateIndex(ctx context.Context, collection string, spec repository.IndexSpec) (string, error) {
	if cs.store == nil {
		return "", errNoDatabase()
	}

	name, err := cs.store.CreateIndex(ctx, collection, spec)
	if err != nil {
		return "", err
	}

	cs.server.Logger.Info().Str("collection", collection).Str("index", name).Msg("index created")
	return name, nil
}

func (cs *CollectionService) DropIndex(ctx context.Context, collection, index string) error {
	if cs.store == nil {
		return errNoDatabase()
	}
	if err := cs.store.DropIndex(ctx, collection, index); err != nil {
		return err
	}

	cs.server.Logger.Info().Str("collection", collection).Str("index", index).Msg("index dropped")
	return nil
}
