package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "filmorate.db"
)

// Config holds runtime settings read from the environment.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// DatabaseURL is either a postgres:// DSN or a SQLite file path.
	DatabaseURL string
	// AllowedOrigins is a comma-separated CORS allowlist; empty allows any.
	AllowedOrigins string
}

// Load reads configuration from the environment. A .env file is applied
// first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:           getEnv("ADDR", defaultAddr),
		DatabaseURL:    getEnv("DATABASE_URL", defaultDatabaseURL),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
