package domain

import "errors"

var (
	// Order validation errors, surfaced to the API caller as 400s.
	ErrMissingParameters = errors.New("missing required parameters")
	ErrInvalidPlan       = errors.New("invalid plan")
	ErrNoDeliveries      = errors.New("no delivery schedule provided")
)
