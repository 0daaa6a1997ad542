// Package main implements the entry point for the wordguess server, which
// serves Russian/English word pairs generated by Gemini to the game UI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// main is the entry point for the wordguess server.
// It loads configuration, sets up logging, wires the generator and starts the
// HTTP server until SIGINT or SIGTERM.
func main() {
	fmt.Println("wordguess server starting...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("Server failed: %v", err)
		stop()
		os.Exit(1)
	}
}

// run performs the core initialization and blocks until the server stops.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
