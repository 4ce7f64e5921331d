// Package logger configure the application's logging.
//
// It uses *ZeroLog* for structured logging. Every log line carries the
// service name and environment, and errors wrapped with pkg/errors get
// their stack trace rendered when logged with .Stack().
package logger

import (
	"io"
	"os"
	"time"

	"github.com/deppfellow/mongodb-errors/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New builds the application logger from the observability config,
// writing to stdout.
func New(cfg *config.ObservabilityConfig) *zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with an explicit output.
//
// Format "console" gives human-friendly output, anything else JSON.
func NewWithWriter(cfg *config.ObservabilityConfig, w io.Writer) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	out := w
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()

	return &logger
}
