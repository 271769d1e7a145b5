// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_DecodeWebexPayload(t *testing.T) {
	payload := `{"id":"r9","title":"Ops","type":"group","isLocked":false,` +
		`"created":"2024-01-01T00:00:00Z","lastActivity":"2024-01-01T00:00:00Z"}`

	var r Room
	require.NoError(t, json.Unmarshal([]byte(payload), &r))

	assert.Equal(t, Room{
		ID:           "r9",
		Title:        "Ops",
		Type:         "group",
		Created:      "2024-01-01T00:00:00Z",
		LastActivity: "2024-01-01T00:00:00Z",
	}, r)
	assert.NoError(t, r.Validate())
}

func TestRoom_Validate_MissingFields(t *testing.T) {
	assert.ErrorIs(t, Room{Title: "Ops"}.Validate(), ErrIncompleteRoom)
	assert.ErrorIs(t, Room{ID: "r1"}.Validate(), ErrIncompleteRoom)
}

func TestCreateRoomRequest_JSON(t *testing.T) {
	body, err := json.Marshal(CreateRoomRequest{Title: "Ops"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Ops"}`, string(body))
}

func TestMessage_JSON(t *testing.T) {
	body, err := json.Marshal(Message{RoomID: "r2", Text: "hello"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"roomId":"r2","text":"hello"}`, string(body))
}
