package generation_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/phrazzld/wordguess/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no fences", input: `{"a":1}`, want: `{"a":1}`},
		{name: "json tag", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "uppercase tag", input: "```JSON\n[1,2]\n```", want: `[1,2]`},
		{name: "no tag", input: "```\n[true]\n```", want: `[true]`},
		{name: "other tag", input: "```javascript\n{}\n```", want: `{}`},
		{name: "tag without newline", input: "```json[1]```", want: `[1]`},
		{name: "surrounding whitespace", input: "  \n```json\n [1] \n```  \n", want: `[1]`},
		{name: "bare literal in fences", input: "```true```", want: `true`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, generation.StripCodeFences(tc.input))
		})
	}
}

// TestParseJSONFencedEqualsUnfenced verifies that fenced payloads decode to
// the same value as their unfenced equivalent.
func TestParseJSONFencedEqualsUnfenced(t *testing.T) {
	t.Parallel()

	payload := `[{"category":"tools","ru":"пила","en":"saw"}]`

	plain, err := generation.ParseJSON(payload)
	require.NoError(t, err)

	for _, wrapped := range []string{
		"```json\n" + payload + "\n```",
		"```\n" + payload + "\n```",
	} {
		fenced, err := generation.ParseJSON(wrapped)
		require.NoError(t, err)
		assert.Equal(t, plain, fenced)
	}
}

func TestParseJSONErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty text", func(t *testing.T) {
		_, err := generation.ParseJSON("  ")
		require.Error(t, err)
		assert.True(t, errors.Is(err, generation.ErrMalformedResponse))
	})

	t.Run("only fences", func(t *testing.T) {
		_, err := generation.ParseJSON("```json\n```")
		require.Error(t, err)
		assert.True(t, errors.Is(err, generation.ErrMalformedResponse))
	})

	t.Run("syntax error is wrapped", func(t *testing.T) {
		_, err := generation.ParseJSON(`{"ru": "пила",}`)
		require.Error(t, err)
		assert.True(t, errors.Is(err, generation.ErrMalformedResponse))

		var syntaxErr *json.SyntaxError
		assert.True(t, errors.As(err, &syntaxErr), "underlying JSON error should be reachable")

		var malformed *generation.MalformedResponseError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, "invalid JSON", malformed.Reason)
	})
}
