package domain

import (
	"fmt"
	"strings"
)

// Difficulty is the coarse vocabulary-rarity tier communicated to the model.
type Difficulty string

// Supported difficulty tiers.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when a request leaves the tier empty.
const DefaultDifficulty = DifficultyMedium

// Difficulties lists every supported tier in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty converts a label into a Difficulty. An empty label yields
// DefaultDifficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d == "" {
		return DefaultDifficulty, nil
	}
	if !d.IsValid() {
		return "", newDifficultyError(s)
	}
	return d, nil
}

func newDifficultyError(label string) *ValidationError {
	return &ValidationError{
		Field:   "difficulty",
		Message: fmt.Sprintf("must be easy, medium or hard, got %q", label),
		Err:     ErrInvalidDifficulty,
	}
}

// IsValid reports whether d is one of the supported tiers.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// OrDefault returns d, or DefaultDifficulty when d is empty.
func (d Difficulty) OrDefault() Difficulty {
	if d == "" {
		return DefaultDifficulty
	}
	return d
}

// Mode tells the model whether the category is free or pinned by the caller.
type Mode string

// Generation modes.
const (
	ModeRandom   Mode = "random"
	ModeCategory Mode = "category"
)

// ModeFor derives the mode from the caller-supplied category.
func ModeFor(category string) Mode {
	if strings.TrimSpace(category) != "" {
		return ModeCategory
	}
	return ModeRandom
}

// Batch size limits.
const (
	DefaultBatchCount = 20
	MaxBatchCount     = 100
)

// PairRequest asks for a single word pair.
type PairRequest struct {
	Category   string
	Difficulty Difficulty
}

// Mode returns the generation mode implied by the category.
func (r PairRequest) Mode() Mode {
	return ModeFor(r.Category)
}

// WithDefaults fills in the default difficulty.
func (r PairRequest) WithDefaults() PairRequest {
	r.Difficulty = r.Difficulty.OrDefault()
	r.Category = strings.TrimSpace(r.Category)
	return r
}

// BatchRequest asks for a batch of word pairs sharing one category.
type BatchRequest struct {
	Category   string
	Count      int
	Difficulty Difficulty
}

// Mode returns the generation mode implied by the category.
func (r BatchRequest) Mode() Mode {
	return ModeFor(r.Category)
}

// WithDefaults fills in the default count and difficulty.
func (r BatchRequest) WithDefaults() BatchRequest {
	if r.Count <= 0 {
		r.Count = DefaultBatchCount
	}
	r.Difficulty = r.Difficulty.OrDefault()
	r.Category = strings.TrimSpace(r.Category)
	return r
}

// Validate checks that the count is within MaxBatchCount and the difficulty,
// if set, is supported.
func (r BatchRequest) Validate() error {
	if r.Count > MaxBatchCount {
		return fmt.Errorf("%w: %d exceeds %d", ErrInvalidCount, r.Count, MaxBatchCount)
	}
	if r.Difficulty != "" && !r.Difficulty.IsValid() {
		return newDifficultyError(string(r.Difficulty))
	}
	return nil
}
