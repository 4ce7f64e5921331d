package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServerRepository runs server-wide admin commands.
type ServerRepository struct {
	admin *mongo.Database
}

func NewServerRepository(client *mongo.Client) *ServerRepository {
	return &ServerRepository{admin: client.Database("admin")}
}

// Top returns per-collection usage statistics. mongos does not implement
// top and answers "no such cmd: top".
func (r *ServerRepository) Top(ctx context.Context) (bson.M, error) {
	logger := commandLogger(ctx, "top")

	var result bson.M
	if err := r.admin.RunCommand(ctx, bson.D{{Key: "top", Value: 1}}).Decode(&result); err != nil {
		return nil, finish(logger, err)
	}
	return result, finish(logger, nil)
}

// ReplSetStatus returns the output of replSetGetStatus.
func (r *ServerRepository) ReplSetStatus(ctx context.Context) (bson.M, error) {
	logger := commandLogger(ctx, "replSetGetStatus")

	var result bson.M
	if err := r.admin.RunCommand(ctx, bson.D{{Key: "replSetGetStatus", Value: 1}}).Decode(&result); err != nil {
		return nil, finish(logger, err)
	}
	return result, finish(logger, nil)
}
