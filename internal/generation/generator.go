package generation

import (
	"context"

	"github.com/phrazzld/wordguess/internal/domain"
)

// TextGenerator sends one prompt to a language model and returns the textual
// answer. Implementations perform exactly one remote call, request
// deterministic output and cap the answer at maxOutputTokens.
//
// Errors:
//   - *RemoteCallError when the endpoint returns a non-success status
//   - ErrMalformedResponse when the answer envelope cannot be decoded
//   - an implementation-specific argument error, such as gemini.ErrEmptyAPIKey
//     or gemini.ErrEmptyPrompt, when the call is rejected before any request
//     is sent; these map to a generic internal error at the HTTP boundary
type TextGenerator interface {
	GenerateText(ctx context.Context, apiKey, prompt string, maxOutputTokens int) (string, error)
}

// Generator defines the interface for generating word pairs for the game.
// This interface serves as a boundary between the delivery layer (HTTP, UI)
// and the language model integration.
type Generator interface {
	// GenerateWordPair asks the model for a single pair and returns it
	// normalized but otherwise unchecked.
	GenerateWordPair(ctx context.Context, apiKey string, req domain.PairRequest) (domain.WordPair, error)

	// GenerateWordBatch asks the model for a batch of pairs, drops items that
	// break the format rules or repeat an English word, and filters the rest
	// through a validation round-trip. The result may be empty.
	GenerateWordBatch(ctx context.Context, apiKey string, req domain.BatchRequest) ([]domain.WordPair, error)
}
