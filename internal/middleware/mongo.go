package middleware

import (
	"github.com/deppfellow/mongodb-errors/internal/errs"
	"github.com/deppfellow/mongodb-errors/internal/mongoerr"
	"github.com/deppfellow/mongodb-errors/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MongoErrors adapts the MongoDB error decoder to the Echo pipeline.
//
// It can be mounted two ways:
//   - as route middleware (Decode), rewriting errors returned by handlers
//   - as a wrapper around another echo.HTTPErrorHandler (ErrorHandler)
//
// Either way the next stage only ever sees the decoded error.
type MongoErrors struct {
	server *server.Server
}

// NewMongoErrors creates the adapter using the server's decoder.
func NewMongoErrors(s *server.Server) *MongoErrors {
	return &MongoErrors{server: s}
}

// Decode returns middleware that runs the handler chain and decodes any error it returns.
func (m *MongoErrors) Decode() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}
			return m.decode(c, err)
		}
	}
}

// ErrorHandler wraps next so it receives decoded errors.
func (m *MongoErrors) ErrorHandler(next echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		next(m.decode(c, err), c)
	}
}

// decode hands err to the asynchronous decoder and waits for its single
// callback, so the request goroutine continues with the decoded value.
func (m *MongoErrors) decode(c echo.Context, err error) error {
	done := make(chan error, 1)
	m.server.Decoder.Decode(err, func(decoded error) {
		done <- m.onDecoded(c, err, decoded)
	})
	return <-done
}

// onDecoded exposes the driver's own message for unrecognised driver errors.
//
// Every other decoded value is forwarded as is.
func (m *MongoErrors) onDecoded(c echo.Context, original, decoded error) error {
	var httpErr *errs.HTTPError
	if !errors.As(decoded, &httpErr) || !httpErr.Driver {
		return decoded
	}

	event := GetLogger(c).Warn().Err(original)
	if cmd := mongoerr.FailedCommand(original); cmd != "" {
		event = event.Str("command", cmd)
	}
	event.Msg("unrecognised MongoDB driver error")

	return httpErr.ExposeDetail()
}
