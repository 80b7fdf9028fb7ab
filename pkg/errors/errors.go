package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and the message exposed to clients.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError whose application code equals the HTTP status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		Code:       statusCode,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common HTTP errors.
var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)

// AsHTTPError unwraps err into an *HTTPError if it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
