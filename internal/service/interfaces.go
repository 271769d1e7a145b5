// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/webex-troubleshooter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientTroubleshootService defines the five operations offered by the
// troubleshooting menu. Every method takes the session explicitly.
//
// Any failure (transport fault, non-2xx status, malformed or incomplete
// body, missing token) is returned wrapped in [ErrOperationFailed] so callers
// only need one check.
type ClientTroubleshootService interface {
	// CheckConnection performs an authenticated read of the current user and
	// returns the decoded profile.
	CheckConnection(ctx context.Context, session models.Session) (models.Person, error)

	// Profile performs the same read as CheckConnection and additionally
	// requires display name, nickname and emails to be present.
	Profile(ctx context.Context, session models.Session) (models.Person, error)

	// ListRooms returns at most [RoomsLimit] rooms in the order the API
	// returned them.
	ListRooms(ctx context.Context, session models.Session) ([]models.Room, error)

	// CreateRoom creates a room titled title and returns it.
	CreateRoom(ctx context.Context, session models.Session, title string) (models.Room, error)

	// SendMessage posts text to the room identified by roomID.
	SendMessage(ctx context.Context, session models.Session, roomID, text string) error
}
