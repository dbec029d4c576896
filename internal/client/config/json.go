package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/kamanbo/techfolio/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero-valued
// fields are treated as "not set" and do not override earlier sources.
type JsonConfig struct {
	BaseURL               string `json:"base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	LocalStorePath        string `json:"local_store_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. If no file is given, nothing happens.
// Read or unmarshal errors panic; configuration is resolved once at startup
// and a broken file should stop the program immediately.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.LocalStorePath != "" {
		cfg.LocalStorePath = jc.LocalStorePath
	}
}
