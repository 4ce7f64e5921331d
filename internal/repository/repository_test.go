package repository

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// unreachableClient points at a port nothing listens on, so every command
// fails fast with a server selection error.
func unreachableClient(t *testing.T) *mongo.Client {
	t.Helper()

	opts := options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(300 * time.Millisecond).
		SetConnectTimeout(300 * time.Millisecond)

	client, err := mongo.Connect(context.Background(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client
}

func TestCommandsLogWithRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Str("request_id", "req-7").Logger()
	ctx := logger.WithContext(context.Background())

	repo := NewCollectionRepository(unreachableClient(t).Database("mongoerr"))

	err := repo.Drop(ctx, "ghost")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-7"`)
	assert.Contains(t, out, `"command":"drop"`)
	assert.Contains(t, out, `"collection":"ghost"`)
	assert.Contains(t, out, "mongo command failed")
}

func TestCommandsWithoutRequestLogger(t *testing.T) {
	repo := NewServerRepository(unreachableClient(t))

	_, err := repo.Top(context.Background())
	assert.Error(t, err)
}

func TestCommandLoggerTagsCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	assert.NoError(t, finish(commandLogger(ctx, "listCollections"), nil))
	assert.Contains(t, buf.String(), `"command":"listCollections"`)
	assert.Contains(t, buf.String(), "mongo command done")
}
