// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Room is a Webex conversation space. Timestamps are kept as the raw strings
// sent by the API so they can be printed verbatim.
type Room struct {
	// ID is the opaque room identifier referenced by messages.
	ID string `json:"id"`

	// Title is the human readable room name.
	Title string `json:"title"`

	// Type is either "direct" or "group". Optional.
	Type string `json:"type,omitempty"`

	// Created is the ISO-8601 creation timestamp.
	Created string `json:"created"`

	// LastActivity is the ISO-8601 timestamp of the latest activity.
	LastActivity string `json:"lastActivity"`
}

// Validate reports [ErrIncompleteRoom] when the room has no id or no title.
func (r Room) Validate() error {
	if r.ID == "" || r.Title == "" {
		return ErrIncompleteRoom
	}
	return nil
}

// RoomList is the envelope of GET /rooms.
type RoomList struct {
	Items []Room `json:"items"`
}

// CreateRoomRequest is the body of POST /rooms.
type CreateRoomRequest struct {
	Title string `json:"title"`
}
