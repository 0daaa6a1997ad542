package domain_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/wordguess/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordPairNormalizes(t *testing.T) {
	t.Parallel()

	pair := domain.NewWordPair("  Kitchen Tools ", " МОЛОТОК", "Hammer  ")

	assert.Equal(t, domain.WordPair{Category: "kitchen tools", RU: "молоток", EN: "hammer"}, pair)
}

func TestWordPairValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pair    domain.WordPair
		wantErr bool
		field   string
	}{
		{name: "valid", pair: domain.NewWordPair("tools", "пила", "saw")},
		{name: "yo letter", pair: domain.NewWordPair("tools", "ёрш", "brush")},
		{name: "missing category", pair: domain.NewWordPair("", "пила", "saw"), wantErr: true, field: "word_pair"},
		{name: "english with digit", pair: domain.NewWordPair("tools", "пила", "saw2"), wantErr: true, field: "en"},
		{name: "english with space", pair: domain.NewWordPair("tools", "пила", "hand saw"), wantErr: true, field: "en"},
		{name: "russian in latin", pair: domain.NewWordPair("tools", "pila", "saw"), wantErr: true, field: "ru"},
		{name: "russian with hyphen", pair: domain.NewWordPair("tools", "пила-нож", "saw"), wantErr: true, field: "ru"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.pair.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var validationErr *domain.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestIsRussianWordIgnoresCase(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.IsRussianWord("Молоток"))
	assert.True(t, domain.IsRussianWord("ЁЛКА"))
	assert.False(t, domain.IsRussianWord(""))
	assert.False(t, domain.IsRussianWord("молоток1"))
}

func TestIsEnglishWordRejectsUppercase(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.IsEnglishWord("hammer"))
	assert.False(t, domain.IsEnglishWord("Hammer"))
	assert.False(t, domain.IsEnglishWord("ham-mer"))
	assert.False(t, domain.IsEnglishWord(""))
}
