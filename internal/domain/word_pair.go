package domain

import (
	"regexp"
	"strings"
)

var (
	englishWordPattern = regexp.MustCompile(`^[a-z]+$`)
	russianWordPattern = regexp.MustCompile(`(?i)^[а-яё]+$`)
)

// WordPair is one round of the guessing game: a Russian word, its English
// translation and the category both belong to.
type WordPair struct {
	Category string `json:"category"`
	RU       string `json:"ru"`
	EN       string `json:"en"`
}

// NewWordPair builds a WordPair with every field trimmed and lowercased.
func NewWordPair(category, ru, en string) WordPair {
	return WordPair{
		Category: normalize(category),
		RU:       normalize(ru),
		EN:       normalize(en),
	}
}

// IsComplete reports whether all three fields are non-empty.
func (p WordPair) IsComplete() bool {
	return p.Category != "" && p.RU != "" && p.EN != ""
}

// HasValidEnglish reports whether EN consists of lowercase latin letters only.
func (p WordPair) HasValidEnglish() bool {
	return IsEnglishWord(p.EN)
}

// HasValidRussian reports whether RU consists of Cyrillic letters only.
func (p WordPair) HasValidRussian() bool {
	return IsRussianWord(p.RU)
}

// Validate checks the batch invariants of a pair: complete, and both words
// made only of letters of their alphabet.
func (p WordPair) Validate() error {
	if !p.IsComplete() {
		return NewValidationError("word_pair", "all fields are required")
	}
	if !p.HasValidEnglish() {
		return NewValidationError("en", "must contain only letters a-z")
	}
	if !p.HasValidRussian() {
		return NewValidationError("ru", "must contain only Cyrillic letters")
	}
	return nil
}

// IsEnglishWord reports whether s matches ^[a-z]+$.
func IsEnglishWord(s string) bool {
	return englishWordPattern.MatchString(s)
}

// IsRussianWord reports whether s is made of Cyrillic letters only, ignoring case.
func IsRussianWord(s string) bool {
	return russianWordPattern.MatchString(s)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
