package repository

import (
	"context"

	"github.com/rs/zerolog"
)

// commandLogger returns the request-scoped logger stored on ctx by the
// ContextEnhancer middleware, tagged with the command about to run.
// Without one, logging is disabled.
func commandLogger(ctx context.Context, command string) *zerolog.Logger {
	logger := zerolog.Ctx(ctx).With().Str("command", command).Logger()
	return &logger
}

// finish logs the outcome of a command and returns err unchanged.
func finish(logger *zerolog.Logger, err error) error {
	if err != nil {
		logger.Debug().Err(err).Msg("mongo command failed")
		return err
	}
	logger.Debug().Msg("mongo command done")
	return nil
}
