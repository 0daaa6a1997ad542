package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/wordguess/internal/domain"
	"github.com/phrazzld/wordguess/internal/prompt"
	"github.com/phrazzld/wordguess/internal/redact"
)

// Output caps used when Limits leaves a field at zero.
const (
	DefaultPairMaxOutputTokens       = 256
	DefaultBatchTokensPerItem        = 64
	DefaultBatchMinOutputTokens      = 1024
	DefaultValidationMaxOutputTokens = 512
)

// Limits bounds the size of each model answer.
type Limits struct {
	// PairMaxOutputTokens caps the single-pair answer.
	PairMaxOutputTokens int
	// BatchTokensPerItem is multiplied by the requested count to cap the
	// batch answer.
	BatchTokensPerItem int
	// BatchMinOutputTokens is the lower bound for the batch cap.
	BatchMinOutputTokens int
	// ValidationMaxOutputTokens caps the validation answer.
	ValidationMaxOutputTokens int
}

func (l Limits) withDefaults() Limits {
	if l.PairMaxOutputTokens <= 0 {
		l.PairMaxOutputTokens = DefaultPairMaxOutputTokens
	}
	if l.BatchTokensPerItem <= 0 {
		l.BatchTokensPerItem = DefaultBatchTokensPerItem
	}
	if l.BatchMinOutputTokens <= 0 {
		l.BatchMinOutputTokens = DefaultBatchMinOutputTokens
	}
	if l.ValidationMaxOutputTokens <= 0 {
		l.ValidationMaxOutputTokens = DefaultValidationMaxOutputTokens
	}
	return l
}

// batchCap returns the output cap for a batch of count items.
func (l Limits) batchCap(count int) int {
	return max(l.BatchMinOutputTokens, count*l.BatchTokensPerItem)
}

// WordGenerator implements Generator on top of a TextGenerator.
type WordGenerator struct {
	model  TextGenerator
	limits Limits
	logger *slog.Logger
}

var _ Generator = (*WordGenerator)(nil)

// NewWordGenerator creates a WordGenerator.
//
// Parameters:
//   - model: the language model backend performing the remote calls
//   - limits: output caps; zero fields fall back to the package defaults
//   - logger: structured logger for operation logging
//
// Returns:
//   - A ready WordGenerator or an error wrapping ErrInvalidConfig
func NewWordGenerator(model TextGenerator, limits Limits, logger *slog.Logger) (*WordGenerator, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: text generator cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &WordGenerator{
		model:  model,
		limits: limits.withDefaults(),
		logger: logger,
	}, nil
}

// GenerateWordPair asks the model for one pair. The fields are trimmed and
// lowercased but not checked against the format rules.
func (g *WordGenerator) GenerateWordPair(
	ctx context.Context,
	apiKey string,
	req domain.PairRequest,
) (domain.WordPair, error) {
	req = req.WithDefaults()

	p := prompt.BuildWordPrompt(req.Mode(), req.Category, req.Difficulty)

	g.logger.DebugContext(ctx, "generating word pair",
		"mode", req.Mode(),
		"category", req.Category,
		"difficulty", req.Difficulty,
		"prompt_length", len(p))

	value, err := g.call(ctx, apiKey, p, g.limits.PairMaxOutputTokens)
	if err != nil {
		return domain.WordPair{}, err
	}

	pair := pairFromValue(value)

	g.logger.InfoContext(ctx, "word pair generated",
		"category", pair.Category,
		"en", pair.EN)

	return pair, nil
}

// GenerateWordBatch asks the model for req.Count pairs, sanitizes them and
// filters them through the validation round-trip.
func (g *WordGenerator) GenerateWordBatch(
	ctx context.Context,
	apiKey string,
	req domain.BatchRequest,
) ([]domain.WordPair, error) {
	req = req.WithDefaults()

	p := prompt.BuildWordBatchPrompt(req.Mode(), req.Category, req.Count, req.Difficulty)
	maxTokens := g.limits.batchCap(req.Count)

	g.logger.DebugContext(ctx, "generating word batch",
		"mode", req.Mode(),
		"category", req.Category,
		"count", req.Count,
		"difficulty", req.Difficulty,
		"max_output_tokens", maxTokens)

	value, err := g.call(ctx, apiKey, p, maxTokens)
	if err != nil {
		return nil, err
	}

	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidBatchShape, value)
	}

	candidates := SanitizeBatch(items)

	g.logger.InfoContext(ctx, "word batch sanitized",
		"received", len(items),
		"candidates", len(candidates))

	category := targetCategory(req.Category, candidates)
	if category == "" {
		g.logger.DebugContext(ctx, "no target category, skipping validation")
		return candidates, nil
	}

	return g.validate(ctx, apiKey, category, candidates)
}

// validate runs the second round-trip and keeps the items the model accepts.
func (g *WordGenerator) validate(
	ctx context.Context,
	apiKey string,
	category string,
	candidates []domain.WordPair,
) ([]domain.WordPair, error) {
	p := prompt.BuildCategoryValidationPrompt(category, candidates)

	value, err := g.call(ctx, apiKey, p, g.limits.ValidationMaxOutputTokens)
	if err != nil {
		return nil, err
	}

	verdicts, isArray := verdictsFromValue(value, len(candidates))
	if !isArray {
		g.logger.WarnContext(ctx, "validation answer is not an array, rejecting all candidates",
			"category", category,
			"candidates", len(candidates),
			"answer_type", fmt.Sprintf("%T", value))
	}

	kept := applyVerdicts(candidates, verdicts)

	g.logger.InfoContext(ctx, "word batch validated",
		"category", category,
		"candidates", len(candidates),
		"kept", len(kept))

	return kept, nil
}

// call performs one remote call and parses the answer as JSON.
func (g *WordGenerator) call(ctx context.Context, apiKey, p string, maxTokens int) (any, error) {
	text, err := g.model.GenerateText(ctx, apiKey, p, maxTokens)
	if err != nil {
		g.logger.ErrorContext(ctx, "language model call failed", "error", redact.Error(err))
		return nil, err
	}

	value, err := ParseJSON(text)
	if err != nil {
		g.logger.ErrorContext(ctx, "language model answer is not valid JSON",
			"error", err,
			"text_length", len(text))
		return nil, err
	}
	return value, nil
}
