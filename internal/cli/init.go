// Package cli provides common CLI initialization utilities for
// cmd/battista: logger setup, .env loading and config validation.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"battista/internal/config"
	"battista/internal/log"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// MustValidateConfig validates the configuration and exits the process on
// failure. Validation runs once, after any flag overrides have been applied
// on top of the environment values.
func MustValidateConfig(logger *log.Logger, cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
}
