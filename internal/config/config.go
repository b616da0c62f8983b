package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// DataDir is the base directory holding the JSON stores and images.
	DataDir string

	// Logging
	LogLevel string
	Env      string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:  getEnv("SPENDBOOK_DATA_DIR", "data"),
		LogLevel: getEnv("SPENDBOOK_LOG_LEVEL", "info"),
		Env:      getEnv("ENV", "development"),
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
