package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by services and repositories.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// ErrTripNotFound is returned when an operation references a trip that does not exist.
var ErrTripNotFound = fmt.Errorf("trip %w", ErrNotFound)

// ValidationError lists every problem found in a request. It unwraps to ErrInvalidInput.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
