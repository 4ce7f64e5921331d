package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/mongodb-errors/internal/config"
	"github.com/deppfellow/mongodb-errors/internal/errs"
	"github.com/deppfellow/mongodb-errors/internal/mongoerr"
	"github.com/deppfellow/mongodb-errors/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Observability = config.DefaultObservabilityConfig()
	logger := zerolog.Nop()

	return server.NewWithDatabase(cfg, &logger, nil)
}

func newTestContext(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/collections", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func runDecode(t *testing.T, m *MongoErrors, handlerErr error) error {
	t.Helper()

	c, _ := newTestContext(echo.New())
	h := m.Decode()(func(echo.Context) error { return handlerErr })
	return h(c)
}

func TestMongoErrorsDecodeUnknownDriverError(t *testing.T) {
	m := NewMongoErrors(newTestServer(t))
	raw := &mongoerr.DriverError{Name: mongoerr.DriverName, Message: "Something weird happened"}

	err := runDecode(t, m, raw)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Something weird happened", httpErr.Message)
	assert.True(t, httpErr.Driver)
	assert.Equal(t, "Something weird happened", raw.Message)
}

func TestMongoErrorsDecodeRecognizedError(t *testing.T) {
	m := NewMongoErrors(newTestServer(t))
	raw := &mongoerr.DriverError{Name: mongoerr.DriverName, Message: "auth failed"}

	err := runDecode(t, m, raw)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
	assert.Equal(t, "Invalid auth credentials", httpErr.Message)
	assert.False(t, httpErr.Driver)
}

func TestMongoErrorsDecodePassesFinalAndForeignErrors(t *testing.T) {
	m := NewMongoErrors(newTestServer(t))

	final := errs.NewConflictError("Collection already exists", false)
	assert.Same(t, final, runDecode(t, m, final))

	foreign := errors.New("boom")
	assert.Same(t, foreign, runDecode(t, m, foreign))

	assert.NoError(t, runDecode(t, m, nil))
}

func TestMongoErrorsErrorHandler(t *testing.T) {
	m := NewMongoErrors(newTestServer(t))
	c, _ := newTestContext(echo.New())

	var got error
	handler := m.ErrorHandler(func(err error, _ echo.Context) { got = err })
	handler(&mongoerr.DriverError{Name: mongoerr.DriverName, Message: "ns does not exist"}, c)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(got, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "ns does not exist", httpErr.Message)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDecodingErrorHandler(t *testing.T) {
	cases := []struct {
		desc        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			desc:        "http error",
			err:         errs.NewBadRequestError("Invalid or missing certificate", false, nil, nil, nil),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "BAD_REQUEST",
			wantMessage: "Invalid or missing certificate",
		},
		{
			desc:        "route not found",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Route not found",
		},
		{
			desc:        "echo error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "METHOD_NOT_ALLOWED",
			wantMessage: "nope",
		},
		{
			desc:        "driver error outside the route chain",
			err:         &mongoerr.DriverError{Name: mongoerr.DriverName, Message: "operation exceeded time limit"},
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    "SERVICE_UNAVAILABLE",
			wantMessage: "Operation exceeded the specified time limit",
		},
		{
			desc:        "large response hides detail",
			err:         &mongoerr.DriverError{Name: mongoerr.DriverName, Message: "BSONObj size: 17000000 is invalid"},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
		{
			desc:        "foreign error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
	}

	s := newTestServer(t)
	handler := NewMongoErrors(s).ErrorHandler(NewGlobalMiddlewares(s).GlobalErrorHandler)

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			c, rec := newTestContext(echo.New())

			handler(tc.err, c)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tc.wantStatus, body.Status)
			assert.Equal(t, tc.wantCode, body.Code)
			assert.Equal(t, tc.wantMessage, body.Message)
		})
	}
}

func TestGlobalErrorHandlerDoesNotDecode(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer(t))
	c, rec := newTestContext(echo.New())

	global.GlobalErrorHandler(&mongoerr.DriverError{Name: mongoerr.DriverName, Message: "auth failed"}, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeBody(t, rec).Message)
}

func TestPipelineExposesDriverMessage(t *testing.T) {
	s := newTestServer(t)
	mws := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = mws.MongoErrors.ErrorHandler(mws.Global.GlobalErrorHandler)
	e.Use(RequestID(), mws.ContextEnhancer.EnhanceContext(), mws.MongoErrors.Decode())
	e.GET("/boom", func(echo.Context) error {
		return &mongoerr.DriverError{Name: mongoerr.DriverName, Message: "Something weird happened", Command: "find"}
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	body := decodeBody(t, rec)
	assert.Equal(t, "Something weird happened", body.Message)
	assert.False(t, strings.Contains(rec.Body.String(), "driver"))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	h := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		require.NoError(t, h(e.NewContext(req, rec)))
		assert.Equal(t, "abc-123", rec.Body.String())
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("replaces oversized header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()

		require.NoError(t, h(e.NewContext(req, rec)))
		assert.Len(t, rec.Body.String(), 36)
	})
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	c, _ := newTestContext(echo.New())
	assert.NotNil(t, GetLogger(c))
}

func TestEnhanceContextStoresLoggerOnRequestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	s := server.NewWithDatabase(config.Default(), &logger, nil)

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())
	e.GET("/ctx", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from repository")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ctx", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"message":"from repository"`)
}
