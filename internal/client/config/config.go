package config

import "time"

// Config holds runtime settings for the WorldQuery CLI.
//
// Fields:
//   - APIBaseURL: root of the REST Countries v3.1 endpoint.
//   - RequestTimeout: per-request bound for API calls.
//   - DatabaseDSN: path/DSN of the local sqlite database.
//   - LogLevel: minimum level for the structured logger.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabaseDSN    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://restcountries.com/v3.1"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "worldquery.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
