package models

import "errors"

// Sentinel errors shared across the service and handler layers. Handlers map
// these onto HTTP status codes so callers can tell bad input apart from a
// missing entity or a refused transition.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoPaymentSession  = errors.New("no associated payment session")
	ErrInvalidTransition = errors.New("invalid status transition")
)
