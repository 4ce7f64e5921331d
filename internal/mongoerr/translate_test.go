package mongoerr

import (
	"testing"

	"github.com/deppfellow/mongodb-errors/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		desc     string
		msg      string
		category errs.Category
		message  string
	}{
		{
			desc:     "connection closed",
			msg:      "connection closed",
			category: errs.CategoryServerTimeout,
			message:  "The connection to MongoDB was closed",
		},
		{
			desc:     "index cannot be dropped",
			msg:      "cannot drop _id index",
			category: errs.CategoryBadRequest,
			message:  "This index cannot be destroyed",
		},
		{
			desc:     "auth failed",
			msg:      "auth failed",
			category: errs.CategoryForbidden,
			message:  "Invalid auth credentials",
		},
		{
			desc:     "authentication failed",
			msg:      "SCRAM-SHA-1: Authentication Failed.",
			category: errs.CategoryForbidden,
			message:  "Invalid auth credentials",
		},
		{
			desc:     "connection refused",
			msg:      "connect ECONNREFUSED 127.0.0.1:27017",
			category: errs.CategoryNotFound,
			message:  "MongoDB not running on the provided host and port",
		},
		{
			desc:     "unknown host",
			msg:      "getaddrinfo ENOTFOUND mongo.example",
			category: errs.CategoryNotFound,
			message:  "MongoDB not running on the provided host and port",
		},
		{
			desc:     "connection timed out",
			msg:      "connection to [localhost:27017] timed out",
			category: errs.CategoryNotFound,
			message:  "Could not connect to MongoDB because the connection timed out",
		},
		{
			desc:     "host not reachable",
			msg:      "failed to connect to [localhost:27017]",
			category: errs.CategoryNotFound,
			message:  "Could not connect to MongoDB on the provided host and port",
		},
		{
			desc:     "missing namespace keeps driver text",
			msg:      "ns does not exist",
			category: errs.CategoryNotFound,
			message:  "ns does not exist",
		},
		{
			desc:     "duplicate keeps driver text",
			msg:      "collection already exists",
			category: errs.CategoryConflict,
			message:  "collection already exists",
		},
		{
			desc:     "bad pipeline keeps driver text",
			msg:      "exception: pipeline element 0 is not an object",
			category: errs.CategoryBadRequest,
			message:  "exception: pipeline element 0 is not an object",
		},
		{
			desc:     "rename onto existing collection",
			msg:      "target namespace exists",
			category: errs.CategoryConflict,
			message:  "Collection already exists",
		},
		{
			desc:     "server sockets closed",
			msg:      "server localhost:27017 sockets closed",
			category: errs.CategoryServerTimeout,
			message:  "The connection to MongoDB was closed",
		},
		{
			desc:     "max time exceeded",
			msg:      "operation exceeded time limit",
			category: errs.CategoryServerTimeout,
			message:  "Operation exceeded the specified time limit",
		},
		{
			desc:     "unknown kerberos service",
			msg:      "Error from KDC: UNKNOWN_SERVER",
			category: errs.CategoryServerTimeout,
			message:  "Invalid service name",
		},
		{
			desc:     "unknown kerberos principal",
			msg:      "No Matching credential found",
			category: errs.CategoryBadRequest,
			message:  "Invalid principal",
		},
		{
			desc:     "self signed certificate",
			msg:      "self signed certificate in certificate chain",
			category: errs.CategoryBadRequest,
			message:  "Invalid or missing certificate",
		},
		{
			desc:     "no kerberos ticket",
			msg:      "No credentials cache file found",
			category: errs.CategoryBadRequest,
			message:  "Kerberos not detected on provided connection details",
		},
		{
			desc:     "socket hang up",
			msg:      "socket hang up",
			category: errs.CategoryServerTimeout,
			message:  "Socket could not establish connection to provided host and port",
		},
		{
			desc:     "document too large",
			msg:      "BSONObj size: 26360608 (0x1923B20) is invalid. Size must be between 0 and 16793600(16MB)",
			category: errs.CategoryBadImplementation,
			message:  "Response from server was too large to process",
		},
		{
			desc:     "top on mongos",
			msg:      "Command Top returned error: MongoError: no such cmd: top",
			category: errs.CategoryBadRequest,
			message:  "Top command is not available in mongos",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			mapping := Translate(tc.msg)
			require.NotNil(t, mapping)
			assert.Equal(t, tc.category, mapping.Category)
			assert.Equal(t, tc.message, mapping.Message)
		})
	}
}

func TestTranslateUnknownMessage(t *testing.T) {
	assert.Nil(t, Translate("not an error"))
	assert.Nil(t, Translate(""))
}

func TestTranslateIsCaseSensitive(t *testing.T) {
	assert.Nil(t, Translate("CONNECTION CLOSED"))
	assert.Nil(t, Translate("econnrefused"))
}

func TestTranslateFirstMatchWins(t *testing.T) {
	mapping := Translate("already exists")
	require.NotNil(t, mapping)
	assert.Equal(t, errs.CategoryConflict, mapping.Category)
	assert.Equal(t, "already exists", mapping.Message)

	// "connection closed" and "sockets closed" both match, the earlier rule wins.
	mapping = Translate("server h:1 sockets closed: connection closed")
	require.NotNil(t, mapping)
	assert.Equal(t, "The connection to MongoDB was closed", mapping.Message)

	// "cannot drop" is checked before "does not exist".
	mapping = Translate("cannot drop index: index does not exist")
	require.NotNil(t, mapping)
	assert.Equal(t, errs.CategoryBadRequest, mapping.Category)
}

func TestTranslateIsDeterministic(t *testing.T) {
	msg := "connect ECONNREFUSED 127.0.0.1:27017"
	assert.Equal(t, Translate(msg), Translate(msg))
}

func TestMappingHTTPError(t *testing.T) {
	mapping := Translate("ns does not exist")
	require.NotNil(t, mapping)

	httpErr := mapping.HTTPError()
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
	assert.Equal(t, "ns does not exist", httpErr.Message)
	assert.False(t, httpErr.Driver)
}

func TestRulesReturnsCopy(t *testing.T) {
	got := Rules()
	require.Len(t, got, 19)

	got[0].Message = "changed"
	assert.Equal(t, "The connection to MongoDB was closed", Rules()[0].Message)
}
