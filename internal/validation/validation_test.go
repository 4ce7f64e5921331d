package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/mongodb-errors/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

type createRequest struct {
	Name string `json:"name" validate:"required,max=5"`
	Size int    `json:"size" validate:"omitempty,min=10"`
}

func (r *createRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Name == "admin" {
		return CustomValidationErrors{{Field: "name", Message: "is reserved"}}
	}
	if r.Name == "x" && r.Size > 100 {
		return errors.New("short names cannot be large")
	}
	return nil
}

func bind(t *testing.T, body string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	return BindAndValidate(c, &createRequest{})
}

func fieldErrors(t *testing.T, err error) []errs.FieldError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr.Errors
}

func TestBindAndValidate(t *testing.T) {
	assert.NoError(t, bind(t, `{"name":"users"}`))

	got := fieldErrors(t, bind(t, `{}`))
	require.Len(t, got, 1)
	assert.Equal(t, "name", got[0].Field)
	assert.Equal(t, "is required", got[0].Error)

	got = fieldErrors(t, bind(t, `{"name":"toolong"}`))
	require.Len(t, got, 1)
	assert.Equal(t, "must not exceed 5 characters", got[0].Error)

	got = fieldErrors(t, bind(t, `{"name":"a","size":3}`))
	require.Len(t, got, 1)
	assert.Equal(t, "must be at least 10", got[0].Error)

	got = fieldErrors(t, bind(t, `{"name":"admin"}`))
	require.Len(t, got, 1)
	assert.Equal(t, "is reserved", got[0].Error)
}

func TestBindErrorIsBadRequest(t *testing.T) {
	err := bind(t, `{"name":`)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestPlainValidationErrorHasNoFields(t *testing.T) {
	err := bind(t, `{"name":"x","size":200}`)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed: short names cannot be large", httpErr.Message)
	assert.Empty(t, httpErr.Errors)
	assert.False(t, httpErr.Override)
}
