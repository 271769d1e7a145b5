// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/webex-troubleshooter/internal/adapter"
	"github.com/MKhiriev/webex-troubleshooter/internal/logger"
	"github.com/MKhiriev/webex-troubleshooter/models"
)

// RoomsLimit caps the number of rooms returned by ListRooms.
const RoomsLimit = 5

const (
	opCheckConnection = "check connection"
	opProfile         = "fetch profile"
	opListRooms       = "list rooms"
	opCreateRoom      = "create room"
	opSendMessage     = "send message"
)

type clientTroubleshootService struct {
	adapter adapter.WebexAdapter
}

// NewClientTroubleshootService returns a [ClientTroubleshootService] backed
// by webexAdapter. Operations log through the logger attached to their
// context.
func NewClientTroubleshootService(webexAdapter adapter.WebexAdapter) ClientTroubleshootService {
	return &clientTroubleshootService{adapter: webexAdapter}
}

// CheckConnection implements [ClientTroubleshootService].
func (s *clientTroubleshootService) CheckConnection(ctx context.Context, session models.Session) (models.Person, error) {
	if session.Empty() {
		return models.Person{}, s.fail(ctx, opCheckConnection, ErrNoToken)
	}

	person, err := s.adapter.Me(ctx, session.Token())
	if err != nil {
		return models.Person{}, s.fail(ctx, opCheckConnection, err)
	}

	logger.FromContext(ctx).Info().Str("person_id", person.ID).Msg("webex server reachable")
	return person, nil
}

// Profile implements [ClientTroubleshootService].
func (s *clientTroubleshootService) Profile(ctx context.Context, session models.Session) (models.Person, error) {
	if session.Empty() {
		return models.Person{}, s.fail(ctx, opProfile, ErrNoToken)
	}

	person, err := s.adapter.Me(ctx, session.Token())
	if err != nil {
		return models.Person{}, s.fail(ctx, opProfile, err)
	}
	if err = person.Validate(); err != nil {
		return models.Person{}, s.fail(ctx, opProfile, err)
	}

	return person, nil
}

// ListRooms implements [ClientTroubleshootService]. Rooms past [RoomsLimit]
// are dropped; a listed room without id or title fails the whole call.
func (s *clientTroubleshootService) ListRooms(ctx context.Context, session models.Session) ([]models.Room, error) {
	if session.Empty() {
		return nil, s.fail(ctx, opListRooms, ErrNoToken)
	}

	rooms, err := s.adapter.ListRooms(ctx, session.Token())
	if err != nil {
		return nil, s.fail(ctx, opListRooms, err)
	}

	limited := slices.Clone(rooms[:min(len(rooms), RoomsLimit)])
	for i, room := range limited {
		if err = room.Validate(); err != nil {
			return nil, s.fail(ctx, opListRooms, fmt.Errorf("room %d: %w", i+1, err))
		}
	}

	logger.FromContext(ctx).Debug().Int("received", len(rooms)).Int("listed", len(limited)).Msg("rooms listed")
	return limited, nil
}

// CreateRoom implements [ClientTroubleshootService].
func (s *clientTroubleshootService) CreateRoom(ctx context.Context, session models.Session, title string) (models.Room, error) {
	if session.Empty() {
		return models.Room{}, s.fail(ctx, opCreateRoom, ErrNoToken)
	}

	room, err := s.adapter.CreateRoom(ctx, session.Token(), title)
	if err != nil {
		return models.Room{}, s.fail(ctx, opCreateRoom, err)
	}
	if err = room.Validate(); err != nil {
		return models.Room{}, s.fail(ctx, opCreateRoom, err)
	}

	logger.FromContext(ctx).Info().Str("room_id", room.ID).Msg("room created")
	return room, nil
}

// SendMessage implements [ClientTroubleshootService].
func (s *clientTroubleshootService) SendMessage(ctx context.Context, session models.Session, roomID, text string) error {
	if session.Empty() {
		return s.fail(ctx, opSendMessage, ErrNoToken)
	}

	err := s.adapter.SendMessage(ctx, session.Token(), models.Message{RoomID: roomID, Text: text})
	if err != nil {
		return s.fail(ctx, opSendMessage, err)
	}

	logger.FromContext(ctx).Info().Str("room_id", roomID).Msg("message sent")
	return nil
}

func (s *clientTroubleshootService) fail(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Error().Err(err).Str("operation", op).Msg("webex operation failed")
	return fmt.Errorf("%w: %s: %w", ErrOperationFailed, op, err)
}
