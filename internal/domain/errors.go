// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDifficulty is returned when a difficulty label is not one of
	// easy, medium or hard.
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// ErrInvalidCount is returned when a batch size is out of range.
	ErrInvalidCount = errors.New("invalid batch count")
)
