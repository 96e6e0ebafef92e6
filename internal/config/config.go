package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	// WorldPath is a world YAML document to load instead of the built-in
	// game. Empty means the embedded default.
	WorldPath string
	// LogPath is where interpreter warnings are written. Empty disables
	// logging.
	LogPath string
}

// LoadConfig reads configuration from a .env file (if present) and the
// environment.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	return &Config{
		WorldPath: os.Getenv("GLADEWOOD_WORLD"),
		LogPath:   os.Getenv("GLADEWOOD_LOG"),
	}, nil
}
