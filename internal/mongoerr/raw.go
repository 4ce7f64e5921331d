package mongoerr

import (
	"encoding/json"
	"errors"

	"github.com/deppfellow/mongodb-errors/internal/errs"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// DriverName is the error name the driver tags its own errors with.
const DriverName = "MongoError"

// DriverError is a loosely shaped driver error, as received from code that
// only knows the driver's name tag, its message and maybe the failing
// command. Extra carries diagnostic fields the decoder never interprets.
type DriverError struct {
	Name    string         `json:"name,omitempty"`
	Message string         `json:"message,omitempty"`
	Command string         `json:"command,omitempty"`
	Extra   map[string]any `json:"extra,omitempty"`
}

func (e *DriverError) Error() string {
	return e.Message
}

// ErrorName reports the error's name tag.
func (e *DriverError) ErrorName() string {
	return e.Name
}

// FailedCommand reports the database command that failed, if known.
func (e *DriverError) FailedCommand() string {
	return e.Command
}

// named is implemented by errors carrying a name tag.
type named interface {
	ErrorName() string
}

// commander is implemented by errors that know which command failed.
type commander interface {
	FailedCommand() string
}

// message returns the text rules are matched against.
//
// Server command errors contribute their bare server message, without the
// "(CodeName)" prefix the driver adds. Errors with an empty message are
// replaced by their JSON form.
func message(err error) string {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Message != "" {
		return cmdErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	raw, jerr := json.Marshal(err)
	if jerr != nil {
		return "{}"
	}
	return string(raw)
}

// errorName returns the first name tag found along the error chain.
func errorName(err error) string {
	var n named
	if errors.As(err, &n) {
		return n.ErrorName()
	}
	return ""
}

// FailedCommand returns the failing command found along the error chain.
func FailedCommand(err error) string {
	var c commander
	if errors.As(err, &c) {
		return c.FailedCommand()
	}
	return ""
}

// isFinal reports whether err is already in presentation form.
func isFinal(err error) bool {
	var httpErr *errs.HTTPError
	return errors.As(err, &httpErr)
}

// IsDriverError reports whether err was produced by the MongoDB driver.
//
// That is either the driver's name tag, a server error (command, write and
// bulk write errors), an error the driver labelled as a network error, a
// failed server selection (nothing reachable) or a disconnected client.
func IsDriverError(err error) bool {
	if err == nil {
		return false
	}
	if errorName(err) == DriverName {
		return true
	}
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return true
	}
	if isServerSelection(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}
	return mongo.IsNetworkError(err)
}

// isServerSelection matches topology.ServerSelectionError, which the driver
// returns by value.
func isServerSelection(err error) bool {
	var sel topology.ServerSelectionError
	if errors.As(err, &sel) {
		return true
	}
	var selPtr *topology.ServerSelectionError
	return errors.As(err, &selPtr)
}
