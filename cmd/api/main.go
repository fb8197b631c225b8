package main

import (
	"os"

	"github.com/smarteredu/portal/internal/pkg/logger"
	"github.com/smarteredu/portal/internal/server"
)

// @title Smarter Education API
// @version 0.1.0
// @description API for managing users and courses in an education portal.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
