package generation

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"github.com/phrazzld/wordguess/internal/domain"
)

var (
	leadingFence  = regexp.MustCompile("(?i)^```(?:json\\b|[a-z0-9_+-]*\\n)?\\s*")
	trailingFence = regexp.MustCompile("\\s*```$")
)

// StripCodeFences removes a leading ``` or ```json fence and a trailing ```
// fence from text and trims the result.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = leadingFence.ReplaceAllString(text, "")
	text = trailingFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ParseJSON strips code fences from text and decodes the remainder into a
// generic JSON value (map[string]any, []any, string, float64, bool or nil).
func ParseJSON(text string) (any, error) {
	cleaned := StripCodeFences(text)
	if cleaned == "" {
		return nil, NewMalformedResponseError("empty text", nil)
	}

	var value any
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return nil, NewMalformedResponseError("invalid JSON", err)
	}
	return value, nil
}

// pairFromValue reads category, ru and en from a decoded JSON object. Any
// other shape, and any missing or falsy field, yields empty strings.
func pairFromValue(value any) domain.WordPair {
	obj, _ := value.(map[string]any)
	return domain.NewWordPair(
		fieldString(obj, "category"),
		fieldString(obj, "ru"),
		fieldString(obj, "en"),
	)
}

// fieldString coerces a decoded field to a string. Missing fields and the
// falsy JSON values null, false, 0 and "" all yield "".
func fieldString(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case nil:
		return ""
	case bool:
		if !v {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	}
	return cast.ToString(obj[key])
}

// verdictsFromValue turns a decoded validation answer into exactly n
// booleans. Only the JSON literal true keeps an item; a non-array answer
// rejects everything. The second result reports whether the answer was an
// array.
func verdictsFromValue(value any, n int) ([]bool, bool) {
	verdicts := make([]bool, n)

	arr, ok := value.([]any)
	if !ok {
		return verdicts, false
	}

	for i := 0; i < n && i < len(arr); i++ {
		keep, isBool := arr[i].(bool)
		verdicts[i] = isBool && keep
	}
	return verdicts, true
}
