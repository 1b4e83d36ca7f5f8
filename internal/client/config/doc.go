// Package config loads runtime configuration for the SkillExchange CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   path to the local SQLite database file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so the value can be
// either a string like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://app.undefineddevelopers.online/skillexchange/api",
//	  "request_timeout": "30s",
//	  "database_path": "skillexchange.db"
//	}
//
// Primary API
//
//   - type Config                     — holds BaseURL, RequestTimeout and DatabasePath
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
