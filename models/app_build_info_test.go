// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.3", "2026-01-01", "abc")

	assert.Equal(t, "v1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
}

func TestNewAppBuildInfo_DefaultsMissingValues(t *testing.T) {
	info := NewAppBuildInfo("", "", "abc")

	assert.Equal(t, BuildInfoNotAvailable, info.BuildVersion())
	assert.Equal(t, BuildInfoNotAvailable, info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
}
