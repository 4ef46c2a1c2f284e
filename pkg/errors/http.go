package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)
