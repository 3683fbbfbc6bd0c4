// If you are AI: This is the main entrypoint for the hellokube server.
// It handles configuration loading, server startup, and graceful shutdown.

package main

import (
	"errors"
	"net/http"
	"os"

	"hellokube/internal/config"
	"hellokube/internal/logger"
	"hellokube/internal/server"
)

// main loads configuration, starts the server, and exits with the
// shutdown outcome's code once a termination signal has been handled.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	srv := server.New(cfg)

	// Subscribe before binding so no early signal is missed.
	shutdownHandler := server.NewShutdownHandler(srv)

	if err := srv.Listen(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := srv.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	os.Exit(shutdownHandler.Wait().Code)
}
