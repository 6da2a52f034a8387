package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when a reached endpoint rejected the
// bearer credentials. The session is cleared before this is returned,
// and no further candidate paths are attempted.
var ErrUnauthorized = errors.New("unauthorized")

// AllEndpointsFailedError is returned when every candidate path for an
// operation failed for a reason other than 401. It carries the last
// failure seen, typically the most specific backend error message.
type AllEndpointsFailedError struct {
	Operation string
	Attempts  int
	LastErr   error
}

func (e *AllEndpointsFailedError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("%s: all %d endpoints failed: %v", e.Operation, e.Attempts, e.LastErr)
	}
	return fmt.Sprintf("%s: all %d endpoints failed", e.Operation, e.Attempts)
}

func (e *AllEndpointsFailedError) Unwrap() error {
	return e.LastErr
}

// MalformedResponseError is returned for a 2xx response whose body does
// not match the expected shape. For identity-establishing calls nothing
// is applied to the session.
type MalformedResponseError struct {
	Operation string
	Reason    string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Operation, e.Reason)
}

// APIError is a backend application error passed through verbatim
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// IsAllEndpointsFailed reports whether err means the backend was
// unreachable on every candidate path, the cue for demo-mode fallback.
func IsAllEndpointsFailed(err error) bool {
	var target *AllEndpointsFailedError
	return errors.As(err, &target)
}
