package main

import (
	"os"

	"github.com/cohort-tools/api/internal/pkg/logger"
	"github.com/cohort-tools/api/internal/server"
)

// @title Cohort Tools API
// @version 1.0
// @description REST API for bootcamp cohorts and their students

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5005
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Details are logged by the bootstrap steps
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
