// Package config loads runtime configuration for the WorldQuery CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with a best-effort .env overlay (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the country data API
//	-t int      request timeout (seconds)
//	-d string   path/DSN of the local sqlite database
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://restcountries.com/v3.1",
//	  "request_timeout": "15s",
//	  "database_dsn": "worldquery.db",
//	  "log_level": "info"
//	}
package config
