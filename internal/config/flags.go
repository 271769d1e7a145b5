// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// FlagSetName is the program name reported in flag usage output.
const FlagSetName = "webex-troubleshooter"

// ParseFlags parses the optional command-line flags in args. Every flag is
// optional; the tool is fully interactive without them.
//
// Flags:
//
//	--api-url          Webex API base URL
//	--request-timeout  per-request timeout (e.g., "30s", "1m")
//	--log-file         path of the JSON log file
//	--log-level        log level (debug, info, warn, error)
//	-c/--config        json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		baseURL        string
		requestTimeout time.Duration
		logFile        string
		logLevel       string
		jsonConfigPath string
	)

	flagSet := pflag.NewFlagSet(FlagSetName, pflag.ContinueOnError)
	flagSet.StringVar(&baseURL, "api-url", "", "Webex API base URL")
	flagSet.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flagSet.StringVar(&logFile, "log-file", "", "Log file path")
	flagSet.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flagSet.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")

	if err := flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
