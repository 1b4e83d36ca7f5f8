package config

import (
	"time"

	"github.com/undefineddevelopers/skillexchange/internal/client/api"
)

// Config holds runtime settings for the SkillExchange CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API.
//   - RequestTimeout: per-request deadline for API calls.
//   - DatabasePath: location of the local SQLite file holding credentials
//     and preferences.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = api.DefaultBaseURL
	c.RequestTimeout = api.DefaultTimeout
	c.DatabasePath = "skillexchange.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
