package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrMalformedResponse is returned when the model answered successfully but
	// the payload could not be reduced to valid JSON
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrInvalidBatchShape is returned when the batch answer parsed as JSON but
	// is not an array
	ErrInvalidBatchShape = errors.New("batch response is not a JSON array")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// RemoteCallError is returned when the model endpoint answers with a
// non-success HTTP status. Body holds the raw response text when it could be
// read.
type RemoteCallError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RemoteCallError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote call failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote call failed with status %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError carries the reason a model payload was rejected.
// It matches ErrMalformedResponse with errors.Is and exposes the underlying
// parse error through Unwrap.
type MalformedResponseError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrMalformedResponse, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedResponse, e.Reason)
}

// Is reports whether target is ErrMalformedResponse.
func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// Unwrap returns the underlying parse error, if any.
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// NewMalformedResponseError builds a MalformedResponseError.
func NewMalformedResponseError(reason string, err error) *MalformedResponseError {
	return &MalformedResponseError{Reason: reason, Err: err}
}
