package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/wordguess/internal/domain"
	"github.com/phrazzld/wordguess/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var remoteErr *generation.RemoteCallError

	switch {
	// Upstream rejected the call
	case errors.As(err, &remoteErr):
		switch remoteErr.StatusCode {
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests
		case http.StatusUnauthorized, http.StatusForbidden:
			return http.StatusUnauthorized
		default:
			return http.StatusBadGateway
		}

	// Upstream answered with something unusable
	case errors.Is(err, generation.ErrMalformedResponse),
		errors.Is(err, generation.ErrInvalidBatchShape):
		return http.StatusBadGateway

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrInvalidCount):
		return http.StatusBadRequest

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var remoteErr *generation.RemoteCallError

	switch {
	case errors.As(err, &remoteErr):
		switch remoteErr.StatusCode {
		case http.StatusTooManyRequests:
			return "Model quota exhausted, try again later"
		case http.StatusUnauthorized, http.StatusForbidden:
			return "Model API key was rejected"
		default:
			return "Model request failed"
		}

	case errors.Is(err, generation.ErrMalformedResponse):
		return "Model returned an unreadable answer"

	case errors.Is(err, generation.ErrInvalidBatchShape):
		return "Model returned an unexpected answer"

	case errors.Is(err, domain.ErrInvalidDifficulty):
		return "Invalid difficulty"

	case errors.Is(err, domain.ErrInvalidCount):
		return "Invalid count"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	case errors.Is(err, context.DeadlineExceeded):
		return "Model request timed out"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'WordBatchRequest.Count' Error:Field validation for 'Count' failed on the 'lte' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "gte":
		return "must not be negative"
	case "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
