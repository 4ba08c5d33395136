package api

import (
	"errors"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// RequestError is the uniform failure for any request that did not end in
// a 2xx response. Message is the server-supplied body text or a
// per-operation fallback; StatusCode is zero when the request never got a
// response at all.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap maps well-known status codes onto sentinel errors so callers can
// use errors.Is without inspecting codes.
func (e *RequestError) Unwrap() error {
	switch e.StatusCode {
	case 0:
		return ErrUnavailable
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}
