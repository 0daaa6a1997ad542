package api

import (
	"github.com/phrazzld/wordguess/internal/domain"
)

// WordPairRequest defines the payload for the single-pair endpoint.
// Every field is optional.
type WordPairRequest struct {
	Category   string `json:"category"   validate:"max=40"`
	Difficulty string `json:"difficulty" validate:"max=10"`
}

// ToDomain converts the payload into a generation request. Difficulty labels
// are case-insensitive; an unknown label returns domain.ErrInvalidDifficulty.
func (r WordPairRequest) ToDomain() (domain.PairRequest, error) {
	difficulty, err := domain.ParseDifficulty(r.Difficulty)
	if err != nil {
		return domain.PairRequest{}, err
	}
	return domain.PairRequest{
		Category:   r.Category,
		Difficulty: difficulty,
	}.WithDefaults(), nil
}

// WordBatchRequest defines the payload for the batch endpoint.
// A zero count selects the default batch size.
type WordBatchRequest struct {
	Category   string `json:"category"   validate:"max=40"`
	Count      int    `json:"count"      validate:"gte=0,lte=100"`
	Difficulty string `json:"difficulty" validate:"max=10"`
}

// ToDomain converts the payload into a generation request.
func (r WordBatchRequest) ToDomain() (domain.BatchRequest, error) {
	difficulty, err := domain.ParseDifficulty(r.Difficulty)
	if err != nil {
		return domain.BatchRequest{}, err
	}
	return domain.BatchRequest{
		Category:   r.Category,
		Count:      r.Count,
		Difficulty: difficulty,
	}.WithDefaults(), nil
}

// WordBatchResponse wraps the surviving pairs of a batch. Items is never null.
type WordBatchResponse struct {
	Items []domain.WordPair `json:"items"`
}
