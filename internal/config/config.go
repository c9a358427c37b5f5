// Package config reads process-level settings (server port, run database
// location) from the environment, with an optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the serve and runs commands.
type Config struct {
	Port         int
	DatabasePath string
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is applied first when
// present; missing files are fine.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnvInt("ROUTEENERGY_PORT", 3000),
		DatabasePath: getEnv("ROUTEENERGY_DB", "runs.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
