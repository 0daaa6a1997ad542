package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when GenerateText is called without a prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrEmptyAPIKey is returned when no API key is available for a call.
	ErrEmptyAPIKey = errors.New("gemini API key cannot be empty")
)
