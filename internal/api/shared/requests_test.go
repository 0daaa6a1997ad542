package shared

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}

	tests := []struct {
		name        string
		requestBody string
		want        payload
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"category": "animals", "count": 5}`,
			want:        payload{Category: "animals", Count: 5},
		},
		{
			name:        "invalid json",
			requestBody: `{"category": "animals",}`,
			wantErr:     true,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			want:        payload{},
		},
		{
			name:        "wrong type",
			requestBody: `{"count": "five"}`,
			wantErr:     true,
			errContains: "cannot unmarshal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var got payload
			err := DecodeJSON(req, &got)

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type selfValidating struct {
	err error
}

func (s selfValidating) Validate() error { return s.err }

func TestValidateRequest(t *testing.T) {
	type request struct {
		Difficulty string `validate:"omitempty,oneof=easy medium hard"`
		Count      int    `validate:"gte=0,lte=100"`
	}

	assert.NoError(t, ValidateRequest(request{}))
	assert.NoError(t, ValidateRequest(request{Difficulty: "hard", Count: 100}))

	err := ValidateRequest(request{Difficulty: "extreme"})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "Difficulty", validationErrs[0].Field())

	assert.Error(t, ValidateRequest(request{Count: 101}))

	assert.NoError(t, ValidateRequest(selfValidating{}))
	assert.ErrorIs(t, ValidateRequest(selfValidating{err: assert.AnError}), assert.AnError)
}
