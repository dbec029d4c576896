// Package config loads runtime configuration for the techfolio CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. The TECHFOLIO_API_URL environment variable (base URL only).
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override everything earlier.
//
// Supported flags
//
//	-a string   base URL of the directory API
//	-t int      request timeout (seconds)
//	-d string   path of the local session store
//
// # JSON schema
//
//	{
//	  "base_url": "https://directory.example.org",
//	  "request_timeout_seconds": 15,
//	  "local_store_path": "techfolio.db"
//	}
package config
