package errs

import (
	"net/http"
)

// statusCode turns an HTTP status into its default machine-readable code.
//
//	http.StatusText(503) => "Service Unavailable" => "SERVICE_UNAVAILABLE"
func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
//
// Parameters:
//   - message: text to send to client
//   - override: a flag your middleware/handler can use to decide whether
//     to replace the message (for security reasons in prod, for example).
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusUnauthorized),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusForbidden),
		Message:  message,
		Status:   http.StatusForbidden,
		Override: override,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
//   - action: optional client instruction (e.g. redirect)
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)

	// If caller supplies custom code pointer, use it.
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewConflictError creates a 409 Conflict HTTPError.
func NewConflictError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusConflict),
		Message:  message,
		Status:   http.StatusConflict,
		Override: override,
	}
}

// NewServerTimeoutError creates a 503 Service Unavailable HTTPError.
//
// Used when the database went away or took too long: the request may
// succeed if retried later.
func NewServerTimeoutError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusServiceUnavailable),
		Message:  message,
		Status:   http.StatusServiceUnavailable,
		Override: override,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note:
//   - message is the generic status text, not the real internal error message.
//   - Override is false by default: you usually don't want to override generic 500s.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewBadImplementationError creates a 500 whose real cause is kept in Detail.
//
// The client still sees the generic status text; logs see the detail.
func NewBadImplementationError(detail string) *HTTPError {
	err := NewInternalServerError()
	err.Detail = detail
	return err
}

// NewDriverError creates the 500 used for MongoDB driver errors that no
// classification rule recognised.
//
// Driver is set and the payload message is the raw driver text, so the
// detail is not lost for this one category.
func NewDriverError(detail string) *HTTPError {
	err := NewBadImplementationError(detail)
	err.Driver = true
	return err.ExposeDetail()
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}

// Category names one presentation class the MongoDB classifier maps
// driver text onto. Category values are comparable, so callers can
// switch on them; New is the category's constructor.
type Category string

const (
	CategoryServerTimeout     Category = "server_timeout"
	CategoryBadRequest        Category = "bad_request"
	CategoryForbidden         Category = "forbidden"
	CategoryNotFound          Category = "not_found"
	CategoryConflict          Category = "conflict"
	CategoryBadImplementation Category = "bad_implementation"
)

// New builds the presentation error for this category.
//
// Messages produced by the rule table are curated and safe to show, so
// none of them ask middleware to override the message. Unknown
// categories degrade to a 500 carrying the message as detail.
func (c Category) New(message string) *HTTPError {
	switch c {
	case CategoryServerTimeout:
		return NewServerTimeoutError(message, false)
	case CategoryBadRequest:
		return NewBadRequestError(message, false, nil, nil, nil)
	case CategoryForbidden:
		return NewForbiddenError(message, false)
	case CategoryNotFound:
		return NewNotFoundError(message, false, nil)
	case CategoryConflict:
		return NewConflictError(message, false)
	default:
		return NewBadImplementationError(message)
	}
}

// CategoryOf reports the category an error's status belongs to.
//
// Statuses outside the taxonomy report ok=false.
func CategoryOf(e *HTTPError) (Category, bool) {
	switch e.Status {
	case http.StatusServiceUnavailable:
		return CategoryServerTimeout, true
	case http.StatusBadRequest:
		return CategoryBadRequest, true
	case http.StatusForbidden:
		return CategoryForbidden, true
	case http.StatusNotFound:
		return CategoryNotFound, true
	case http.StatusConflict:
		return CategoryConflict, true
	case http.StatusInternalServerError:
		return CategoryBadImplementation, true
	}
	return "", false
}
