// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the Webex REST API.
//
// The primary abstraction is [WebexAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPWebexAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for status-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/webex-troubleshooter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/webex_adapter_mock.go -package=mock

// WebexAdapter defines communication with the Webex REST API. Every method
// takes the bearer token explicitly; the adapter keeps no session state.
// Implementations return [ErrEmptyToken] without touching the network when
// token is blank.
type WebexAdapter interface {
	// Me fetches the profile of the token owner (GET /people/me).
	Me(ctx context.Context, token string) (models.Person, error)

	// ListRooms fetches the rooms visible to the token owner (GET /rooms)
	// in the order the API returned them.
	ListRooms(ctx context.Context, token string) ([]models.Room, error)

	// CreateRoom creates a group room with the given title (POST /rooms) and
	// returns the created room.
	CreateRoom(ctx context.Context, token string, title string) (models.Room, error)

	// SendMessage posts a plain text message to a room (POST /messages).
	SendMessage(ctx context.Context, token string, message models.Message) error
}
