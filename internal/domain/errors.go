package domain

import "errors"

// Sentinel errors surfaced by the registry and services. Controllers map them
// to status codes with errors.Is.
var (
	ErrNotFound          = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("student already signed up")
	ErrCapacityExceeded  = errors.New("maximum participants reached")
	ErrInvalidInput      = errors.New("invalid input")
)
