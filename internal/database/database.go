// Package database contains the logic for establishing
// connections to MongoDB.
//
// It handles:
//   - building client options from config (URI, timeouts, pool size)
//   - wiring command logging (driver command monitor) in local env
//   - connecting, pinging and disconnecting the client
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/mongodb-errors/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database wraps the MongoDB client, the application database and a logger.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// DatabasePingTimeout is the number of seconds to wait for a ping
// before considering MongoDB "unreachable".
const DatabasePingTimeout = 10

// commandLogger logs every driver command. Failed commands are logged with
// the command name, which is the only place that name is known.
func commandLogger(logger *zerolog.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(_ context.Context, e *event.CommandStartedEvent) {
			logger.Debug().
				Int64("request_id", e.RequestID).
				Str("database", e.DatabaseName).
				Str("command", e.CommandName).
				Msg("mongo command started")
		},
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			logger.Debug().
				Int64("request_id", e.RequestID).
				Str("command", e.CommandName).
				Msg("mongo command succeeded")
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			logger.Warn().
				Int64("request_id", e.RequestID).
				Str("command", e.CommandName).
				Str("failure", e.Failure).
				Msg("mongo command failed")
		},
	}
}

// ClientOptions builds the driver options for cfg.
func ClientOptions(cfg *config.Config, logger *zerolog.Logger) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(time.Duration(cfg.Database.ConnectTimeout) * time.Second).
		SetServerSelectionTimeout(time.Duration(cfg.Database.ServerSelectionTimeout) * time.Second)

	if cfg.Database.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.Database.MaxPoolSize)
	}

	// Command logging is very noisy, which is why it's only in local.
	if cfg.Primary.Env == "local" {
		opts.SetMonitor(commandLogger(logger))
	}

	return opts
}

// New connects to MongoDB and pings the primary.
//
// The returned error is the driver's own error, wrapped, so callers can run
// it through the MongoDB error decoder.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	opts := ClientOptions(cfg, logger)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mongo client options: %w", err)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	database := &Database{
		Client: client,
		DB:     client.Database(cfg.Database.Name),
		log:    logger,
	}

	pingCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout*time.Second)
	defer cancel()
	if err := database.Ping(pingCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("connected to the database")

	return database, nil
}

// Ping checks that the primary is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting for in-use connections until ctx ends.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing database connection")
	return db.Client.Disconnect(ctx)
}
