package services

import (
	"errors"
	"strings"
)

var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested id
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaNotFound is returned when no pizza has the requested id
	ErrPizzaNotFound = errors.New("pizza not found")
	// ErrClientNotFound is returned when no OAuth client has the requested id
	ErrClientNotFound = errors.New("client not found")
)

// ValidationError lists every check a write request failed.
// Err keeps the underlying persistence error, if any, for logging.
type ValidationError struct {
	Errors []string
	Err    error
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
