package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/devraj/lecturehall/internal/pkg/logger"
	"github.com/devraj/lecturehall/internal/server"
)

// @title LectureHall API
// @version 1.0
// @description Lecture scheduling API: admins manage instructors, courses and lectures; instructors view their schedule

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Optional .env for local development, real deployments use the environment
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env file")
	}

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
