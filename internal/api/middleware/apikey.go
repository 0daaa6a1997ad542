package middleware

import (
	"net/http"
	"strings"

	"github.com/phrazzld/wordguess/internal/api/shared"
)

// APIKeyHeader is the header a caller uses to forward their Gemini key.
const APIKeyHeader = "X-Goog-Api-Key"

// APIKeyMiddleware resolves the model API key for each request. The key comes
// from the X-Goog-Api-Key header, then from an Authorization bearer token, then
// from the configured fallback.
type APIKeyMiddleware struct {
	fallbackKey string
}

// NewAPIKeyMiddleware creates an APIKeyMiddleware. fallbackKey may be empty,
// in which case every request must bring its own key.
func NewAPIKeyMiddleware(fallbackKey string) *APIKeyMiddleware {
	return &APIKeyMiddleware{fallbackKey: strings.TrimSpace(fallbackKey)}
}

// RequireAPIKey stores the resolved key in the request context and rejects
// requests for which no key can be found.
func (m *APIKeyMiddleware) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := strings.TrimSpace(r.Header.Get(APIKeyHeader))

		if apiKey == "" {
			if authHeader := r.Header.Get("Authorization"); authHeader != "" {
				parts := strings.Fields(authHeader)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
					shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
						"Invalid authorization format", nil, shared.WithElevatedLogLevel())
					return
				}
				apiKey = parts[1]
			}
		}

		if apiKey == "" {
			apiKey = m.fallbackKey
		}

		if apiKey == "" {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
				"API key required", nil, shared.WithElevatedLogLevel())
			return
		}

		ctx := shared.WithAPIKey(r.Context(), apiKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
