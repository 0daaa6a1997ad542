package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/wordguess/internal/api/shared"
	"github.com/phrazzld/wordguess/internal/domain"
	"github.com/phrazzld/wordguess/internal/generation"
	"github.com/phrazzld/wordguess/internal/platform/logger"
)

// WordHandler serves word pairs to the game UI.
type WordHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewWordHandler creates a new WordHandler
func NewWordHandler(generator generation.Generator, logger *slog.Logger) *WordHandler {
	if generator == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("generator cannot be nil for WordHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for WordHandler")
	}

	return &WordHandler{
		generator: generator,
		logger:    logger.With(slog.String("component", "word_handler")),
	}
}

// GenerateWordPair handles POST /api/words/pair requests.
func (h *WordHandler) GenerateWordPair(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	apiKey, ok := shared.GetAPIKey(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "API key required")
		return
	}

	var req WordPairRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	pairReq, err := req.ToDomain()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("generating word pair",
		slog.String("mode", string(pairReq.Mode())),
		slog.String("category", pairReq.Category),
		slog.String("difficulty", string(pairReq.Difficulty)))

	pair, err := h.generator.GenerateWordPair(r.Context(), apiKey, pairReq)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pair)
}

// GenerateWordBatch handles POST /api/words/batch requests.
// An empty batch is a successful response.
func (h *WordHandler) GenerateWordBatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	apiKey, ok := shared.GetAPIKey(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "API key required")
		return
	}

	var req WordBatchRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	batchReq, err := req.ToDomain()
	if err == nil {
		err = batchReq.Validate()
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("generating word batch",
		slog.String("mode", string(batchReq.Mode())),
		slog.String("category", batchReq.Category),
		slog.Int("count", batchReq.Count),
		slog.String("difficulty", string(batchReq.Difficulty)))

	pairs, err := h.generator.GenerateWordBatch(r.Context(), apiKey, batchReq)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if pairs == nil {
		pairs = []domain.WordPair{}
	}

	log.Info("word batch generated",
		slog.Int("requested", batchReq.Count),
		slog.Int("returned", len(pairs)))

	shared.RespondWithJSON(w, r, http.StatusOK, WordBatchResponse{Items: pairs})
}
