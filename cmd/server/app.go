package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/phrazzld/wordguess/internal/config"
	"github.com/phrazzld/wordguess/internal/generation"
	"github.com/phrazzld/wordguess/internal/platform/gemini"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
}

// newApplication creates a new application instance with all dependencies initialized.
// transport may be nil, in which case the Gemini client uses its pooled HTTP
// transport.
func newApplication(cfg *config.Config, logger *slog.Logger, transport gemini.Transport) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	client, err := gemini.NewClient(logger.With("component", "gemini_client"), cfg.LLM, transport)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	app.generator, err = generation.NewWordGenerator(client, generation.Limits{
		PairMaxOutputTokens:       cfg.LLM.PairMaxOutputTokens,
		BatchTokensPerItem:        cfg.LLM.BatchTokensPerItem,
		BatchMinOutputTokens:      cfg.LLM.BatchMinOutputTokens,
		ValidationMaxOutputTokens: cfg.LLM.ValidationMaxOutputTokens,
	}, logger.With("component", "word_generator"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize word generator: %w", err)
	}

	logger.Info("Word generator initialized successfully",
		"model", client.Model(),
		"base_url", cfg.LLM.BaseURL)

	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns when ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", app.config.Server.Port, err)
	}

	if err := app.startHTTPServer(ctx, listener, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
