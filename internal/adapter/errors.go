package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptySessionID = errors.New("empty session id")
)

// ResponseError describes a non-2xx answer of the assistant service.
type ResponseError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the `error` field of the JSON body, or the trimmed raw body
	// when the body is not JSON. It may be empty.
	Message string

	sentinel error
}

func (e *ResponseError) Error() string {
	status := http.StatusText(e.StatusCode)
	if e.sentinel != nil {
		status = e.sentinel.Error()
	}

	if e.Message == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, status)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, status, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.sentinel
}
