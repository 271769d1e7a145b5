// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultBaseURL is the Webex REST API root used when nothing else is
	// configured.
	DefaultBaseURL = "https://api.ciscospark.com/v1"
	// DefaultRequestTimeout bounds a single outbound request.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultLogLevel is the zerolog level name used by default.
	DefaultLogLevel = "info"
	// DefaultDotEnvFile is the dotenv file looked up in the working directory.
	DefaultDotEnvFile = ".env"
)

// StructuredConfig is the top-level configuration container for the
// webex-troubleshooter application.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the Webex API endpoint and request timeout.
	Adapter Adapter `envPrefix:"WEBEX_"`
	// Log holds the log file location and verbosity.
	Log Log `envPrefix:"WEBEX_LOG_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound Webex transport.
type Adapter struct {
	// BaseURL is the API root, e.g. "https://webexapis.com/v1".
	// Env: WEBEX_API_BASE_URL
	BaseURL string `env:"API_BASE_URL"`
	// RequestTimeout is the maximum duration of a single API call
	// (e.g. "30s", "1m").
	// Env: WEBEX_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// File is the path of the JSON log file. Empty means a file next to the
	// executable.
	// Env: WEBEX_LOG_FILE
	File string `env:"FILE"`
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: WEBEX_LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from the dotenv file, args (typically os.Args[1:]), the
// environment and the optional JSON file.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation. A --help request is
// reported as pflag.ErrHelp (wrapped).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvFile).
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
