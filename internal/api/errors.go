package api

import (
	"errors"
	"fmt"
)

// Error is a backend rejection: the server answered with a non-2xx
// status. Detail carries the human-readable message from the response
// body's "detail" field when present.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server error (HTTP %d)", e.StatusCode)
}

// UnavailableError wraps transport-level failures: the request never
// produced an HTTP response.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// InvalidResponseError indicates the server answered 2xx but the body
// does not match the shape the client depends on.
type InvalidResponseError struct {
	Err error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid server response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// IsStatus reports whether err is a backend rejection with the given
// HTTP status code.
func IsStatus(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
