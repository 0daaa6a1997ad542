package prompt

import "github.com/phrazzld/wordguess/internal/domain"

// tierRules holds the lexical constraints for each difficulty tier.
var tierRules = map[domain.Difficulty][]string{
	domain.DifficultyEasy: {
		"Difficulty easy: everyday words a beginner learns in the first months.",
		"en must have 3-6 letters.",
		"Prefer very frequent, well-known concrete nouns.",
	},
	domain.DifficultyMedium: {
		"Difficulty medium: familiar words that are not the very first ones learners meet.",
		"en must have 4-9 letters; avoid very short words (2-3 letters).",
		"Avoid extremely common beginner words (cat, dog, apple, red, blue, car, house, water, sun, book).",
	},
	domain.DifficultyHard: {
		"Difficulty hard: less common, more specific nouns an advanced learner would know.",
		"en must have 7-12 letters.",
		"Avoid any word from a basic beginner vocabulary; prefer rarer but real dictionary words.",
	},
}

// commonCategories are the over-used categories a batch must avoid.
var commonCategories = []string{
	"animals", "food", "colors", "fruits", "sports", "countries", "cities",
	"family", "body", "school", "weather", "transport", "clothes",
}

// rulesFor returns the constraints for d, falling back to the medium tier
// for unknown labels.
func rulesFor(d domain.Difficulty) []string {
	if rules, ok := tierRules[d]; ok {
		return rules
	}
	return tierRules[domain.DifficultyMedium]
}
