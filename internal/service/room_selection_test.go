// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRoom_Valid(t *testing.T) {
	rooms := testRooms(3)

	tests := []struct {
		choice string
		want   int
	}{
		{choice: "1", want: 0},
		{choice: "2", want: 1},
		{choice: "3", want: 2},
		{choice: "02", want: 1},
	}

	for _, tt := range tests {
		room, err := SelectRoom(rooms, tt.choice)
		require.NoError(t, err, tt.choice)
		assert.Equal(t, rooms[tt.want], room, tt.choice)
	}
}

func TestSelectRoom_Invalid(t *testing.T) {
	rooms := testRooms(3)

	for _, choice := range []string{
		"", "0", "4", "-1", "+1", " 2", "2 ", "1.0", "two", "²",
		"99999999999999999999999999",
	} {
		_, err := SelectRoom(rooms, choice)
		assert.ErrorIs(t, err, ErrInvalidRoomChoice, "choice %q", choice)
	}
}

func TestSelectRoom_NoRooms(t *testing.T) {
	_, err := SelectRoom(nil, "1")
	assert.ErrorIs(t, err, ErrInvalidRoomChoice)
}
