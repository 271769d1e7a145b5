// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/webex-troubleshooter/models"
	"github.com/stretchr/testify/assert"
)

func TestPrintBuildInfo(t *testing.T) {
	var out bytes.Buffer

	printBuildInfo(&out, models.NewAppBuildInfo("v1.2.3", "", "abc"))

	assert.Equal(t, "Build version: v1.2.3\nBuild date: N/A\nBuild commit: abc\n", out.String())
}
