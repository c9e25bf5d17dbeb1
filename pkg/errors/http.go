package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that knows which HTTP status it maps to.
// An empty Message means the response carries no body.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Code)
	}
	return e.Message
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "service unavailable")
)

// AsHTTPError unwraps err into an *HTTPError when it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
