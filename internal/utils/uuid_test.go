// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingIDGenerator_Format(t *testing.T) {
	g := NewTrackingIDGenerator("webex-troubleshooter")

	id := g.Generate()

	prefix, raw, ok := strings.Cut(id, "_")
	require.True(t, ok, id)
	assert.Equal(t, "webex-troubleshooter", prefix)

	parsed, err := uuid.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestTrackingIDGenerator_Unique(t *testing.T) {
	g := NewTrackingIDGenerator("t")

	seen := make(map[string]struct{})
	for range 100 {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate tracking id %s", id)
		seen[id] = struct{}{}
	}
}
