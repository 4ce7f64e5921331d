package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexKey is one field of an index and its direction (1, -1) or type ("text", "2dsphere").
type IndexKey struct {
	Field string
	Value any
}

// IndexSpec describes an index to create.
type IndexSpec struct {
	Name   string
	Keys   []IndexKey
	Unique bool
}

// CollectionInfo is the subset of listCollections output the API returns.
type CollectionInfo struct {
	Name string `bson:"name" json:"name"`
	Type string `bson:"type" json:"type"`
}

// CollectionRepository runs collection and index commands on one database.
type CollectionRepository struct {
	db *mongo.Database
}

func NewCollectionRepository(db *mongo.Database) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// List returns every collection of the database.
func (r *CollectionRepository) List(ctx context.Context) ([]CollectionInfo, error) {
	logger := commandLogger(ctx, "listCollections")

	cursor, err := r.db.ListCollections(ctx, bson.D{}, options.ListCollections().SetNameOnly(true))
	if err != nil {
		return nil, finish(logger, err)
	}

	collections := []CollectionInfo{}
	if err := cursor.All(ctx, &collections); err != nil {
		return nil, finish(logger, err)
	}
	return collections, finish(logger, nil)
}

// Create creates a collection. An existing collection makes the server
// answer with a NamespaceExists error.
func (r *CollectionRepository) Create(ctx context.Context, name string, capped bool, sizeBytes int64) error {
	logger := commandLogger(ctx, "create")
	logger.Debug().Str("collection", name).Bool("capped", capped).Msg("creating collection")

	opts := options.CreateCollection()
	if capped {
		opts.SetCapped(true).SetSizeInBytes(sizeBytes)
	}
	return finish(logger, r.db.CreateCollection(ctx, name, opts))
}

// Drop runs the drop command directly. Collection.Drop swallows
// "ns not found", which would hide the error from callers.
func (r *CollectionRepository) Drop(ctx context.Context, name string) error {
	logger := commandLogger(ctx, "drop")
	logger.Debug().Str("collection", name).Msg("dropping collection")

	return finish(logger, r.db.RunCommand(ctx, bson.D{{Key: "drop", Value: name}}).Err())
}

// CreateIndex creates an index and returns its name.
func (r *CollectionRepository) CreateIndex(ctx context.Context, collection string, spec IndexSpec) (string, error) {
	keys := make(bson.D, 0, len(spec.Keys))
	for _, k := range spec.Keys {
		keys = append(keys, bson.E{Key: k.Field, Value: k.Value})
	}

	opts := options.Index().SetUnique(spec.Unique)
	if spec.Name != "" {
		opts.SetName(spec.Name)
	}

	logger := commandLogger(ctx, "createIndexes")
	logger.Debug().Str("collection", collection).Int("keys", len(keys)).Msg("creating index")

	name, err := r.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	})
	return name, finish(logger, err)
}

// DropIndex drops one index by name. Dropping "_id_" is refused by the server.
func (r *CollectionRepository) DropIndex(ctx context.Context, collection, index string) error {
	logger := commandLogger(ctx, "dropIndexes")
	logger.Debug().Str("collection", collection).Str("index", index).Msg("dropping index")

	_, err := r.db.Collection(collection).Indexes().DropOne(ctx, index)
	return finish(logger, err)
}
