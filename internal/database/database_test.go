package database

import (
	"testing"
	"time"

	"github.com/deppfellow/mongodb-errors/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Database.URI = "mongodb://db.internal:27018"
	cfg.Database.MaxPoolSize = 20
	logger := zerolog.Nop()

	opts := ClientOptions(cfg, &logger)
	require.NoError(t, opts.Validate())

	assert.Equal(t, []string{"db.internal:27018"}, opts.Hosts)
	require.NotNil(t, opts.ConnectTimeout)
	assert.Equal(t, 10*time.Second, *opts.ConnectTimeout)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, 5*time.Second, *opts.ServerSelectionTimeout)
	require.NotNil(t, opts.MaxPoolSize)
	assert.Equal(t, uint64(20), *opts.MaxPoolSize)
	assert.Nil(t, opts.Monitor)
}

func TestClientOptionsLocalEnvLogsCommands(t *testing.T) {
	cfg := config.Default()
	cfg.Primary.Env = "local"
	logger := zerolog.Nop()

	opts := ClientOptions(cfg, &logger)
	assert.NotNil(t, opts.Monitor)
}
