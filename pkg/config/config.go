package config

import (
	"os"
)

type Config struct {
	Port      string
	PuzzlesDB string
	GinMode   string
}

// Load loads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() (*Config, error) {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		PuzzlesDB: getEnv("PUZZLES_DB", "puzzles.db"),
		GinMode:   getEnv("GIN_MODE", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
