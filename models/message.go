// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is the body of POST /messages: plain text posted to a room.
type Message struct {
	RoomID string `json:"roomId"`
	Text   string `json:"text"`
}
