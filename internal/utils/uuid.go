// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// TrackingIDGenerator produces values for the Webex TrackingID request
// header in the "<prefix>_<uuid>" form. Webex support can look a request up
// by this value.
type TrackingIDGenerator struct {
	prefix string
}

// NewTrackingIDGenerator returns a generator using prefix.
func NewTrackingIDGenerator(prefix string) *TrackingIDGenerator {
	return &TrackingIDGenerator{prefix: prefix}
}

// Generate returns a new tracking id. UUIDv7 keeps ids time-ordered in the
// log file; a random v4 is used if v7 generation fails.
func (g *TrackingIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return g.prefix + "_" + uuid.NewString()
	}

	return g.prefix + "_" + id.String()
}
