package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/wordguess/internal/api"
	apiMiddleware "github.com/phrazzld/wordguess/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	wordHandler := api.NewWordHandler(app.generator, app.logger)
	apiKeyMiddleware := apiMiddleware.NewAPIKeyMiddleware(app.config.LLM.GeminiAPIKey)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware.RequireAPIKey)

			r.Post("/words/pair", wordHandler.GenerateWordPair)
			r.Post("/words/batch", wordHandler.GenerateWordBatch)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
