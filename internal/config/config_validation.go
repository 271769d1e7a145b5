// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The base URL is
// replaced by its normalised form.
func (cfg *StructuredConfig) validate() error {
	baseURL, err := NormalizeBaseURL(cfg.Adapter.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base url %q: %w", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL, err)
	}
	cfg.Adapter.BaseURL = baseURL

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if _, err = zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
