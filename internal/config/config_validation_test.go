// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			Adapter: Adapter{BaseURL: DefaultBaseURL, RequestTimeout: time.Second},
			Log:     Log{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no scheme", mutate: func(cfg *StructuredConfig) { cfg.Adapter.BaseURL = "api.ciscospark.com/v1" }},
		{
			name:    "blank url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.BaseURL = "  " },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "no host",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.BaseURL = "https:///v1" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "chatty" },
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStructuredConfig_ValidateNormalizesBaseURL(t *testing.T) {
	cfg := &StructuredConfig{
		Adapter: Adapter{BaseURL: " webexapis.com/v1/ ", RequestTimeout: time.Second},
		Log:     Log{Level: "info"},
	}

	require.NoError(t, cfg.validate())
	assert.Equal(t, "https://webexapis.com/v1", cfg.Adapter.BaseURL)
}
