package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Transport failures.
var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Protocol failures: the server answered 2xx but not with what we need.
var (
	ErrMissingToken      = errors.New("response carries no token")
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is returned for non-2xx responses. It matches
// ErrUnauthorized for 401/403 and ErrUnexpectedStatus otherwise.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("status %d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
}

func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return ErrUnexpectedStatus
	}
}

// IsTransport reports whether err is a network or non-2xx failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrUnexpectedStatus)
}

// IsProtocol reports whether err is a 2xx response missing expected data.
func IsProtocol(err error) bool {
	return errors.Is(err, ErrMissingToken) || errors.Is(err, ErrMalformedResponse)
}
