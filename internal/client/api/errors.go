package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// completed or the endpoint answered with a non-success HTTP status.
	ErrUnavailable = errors.New("idea service unavailable")

	// ErrMalformedResponse marks a completed exchange whose payload does not
	// have the expected shape.
	ErrMalformedResponse = errors.New("malformed idea service response")
)

// ServiceError is an explicit error envelope reported by the backend
// ({"status":"error","message":...}). Message may be empty.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return "idea service error"
	}
	return fmt.Sprintf("idea service error: %s", e.Message)
}
