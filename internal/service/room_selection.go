// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strconv"

	"github.com/MKhiriev/webex-troubleshooter/models"
)

// SelectRoom resolves the operator's 1-based choice against a freshly listed
// set of rooms. choice must consist of ASCII digits only and its value must
// lie in [1, len(rooms)]; anything else yields [ErrInvalidRoomChoice].
func SelectRoom(rooms []models.Room, choice string) (models.Room, error) {
	if !isDigits(choice) {
		return models.Room{}, ErrInvalidRoomChoice
	}

	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(rooms) {
		return models.Room{}, ErrInvalidRoomChoice
	}

	return rooms[idx-1], nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
