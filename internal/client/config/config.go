package config

import (
	"os"
	"time"
)

// DefaultBaseURL is the hosted directory service the client talks to when
// nothing overrides it.
const DefaultBaseURL = "https://techfolio-production.up.railway.app"

// Config holds runtime settings for the techfolio CLI.
//
// Fields:
//   - BaseURL: root of the directory REST API.
//   - RequestTimeout: shared client-wide deadline for every API call.
//   - LocalStorePath: SQLite file holding the persisted session.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	LocalStorePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = DefaultBaseURL
	c.RequestTimeout = 15 * time.Second
	c.LocalStorePath = "techfolio.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// TECHFOLIO_API_URL environment variable, values from JSON (if present),
// and command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// parseEnv overlays the single supported environment override.
func parseEnv(cfg *Config) {
	if v := os.Getenv("TECHFOLIO_API_URL"); v != "" {
		cfg.BaseURL = v
	}
}
