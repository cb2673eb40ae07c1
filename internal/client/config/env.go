package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first, best-effort; real environment variables win over it.
const (
	envAPIBaseURL     = "WORLDQUERY_API_BASE_URL"
	envRequestTimeout = "WORLDQUERY_REQUEST_TIMEOUT"
	envDatabaseDSN    = "WORLDQUERY_DATABASE_DSN"
	envLogLevel       = "WORLDQUERY_LOG_LEVEL"
)

// parseEnv overlays cfg with values from the environment. The timeout is a
// Go duration string ("15s"); an unparseable value is ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
