package services

import "errors"

var (
	// ErrValidation marks a client-side precondition failure. The action was
	// blocked before any network call and no state changed.
	ErrValidation = errors.New("validation error")

	// ErrBusy means a submission is already in flight.
	ErrBusy = errors.New("submission already in progress")
)
