package generation

import "github.com/phrazzld/wordguess/internal/domain"

// SanitizeBatch normalizes every decoded item and drops, in order, items with
// an empty field, items whose en is not ^[a-z]+$, items whose ru is not
// Cyrillic-only, and items repeating an en already seen. Order is preserved.
func SanitizeBatch(items []any) []domain.WordPair {
	result := make([]domain.WordPair, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		pair := pairFromValue(item)

		if err := pair.Validate(); err != nil {
			continue
		}
		if _, dup := seen[pair.EN]; dup {
			continue
		}

		seen[pair.EN] = struct{}{}
		result = append(result, pair)
	}

	return result
}

// targetCategory returns the caller's category, or the category of the first
// candidate when the caller gave none.
func targetCategory(requested string, candidates []domain.WordPair) string {
	if requested != "" {
		return domain.NewWordPair(requested, "", "").Category
	}
	if len(candidates) > 0 {
		return candidates[0].Category
	}
	return ""
}

// applyVerdicts keeps the candidates whose verdict is true.
func applyVerdicts(candidates []domain.WordPair, verdicts []bool) []domain.WordPair {
	kept := make([]domain.WordPair, 0, len(candidates))
	for i, pair := range candidates {
		if i < len(verdicts) && verdicts[i] {
			kept = append(kept, pair)
		}
	}
	return kept
}
