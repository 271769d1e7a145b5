// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/webex-troubleshooter/internal/config"
	"github.com/MKhiriev/webex-troubleshooter/internal/logger"
	"github.com/MKhiriev/webex-troubleshooter/internal/utils"
	"github.com/MKhiriev/webex-troubleshooter/models"
	"github.com/go-resty/resty/v2"
)

const (
	// AppName prefixes TrackingID headers and the User-Agent.
	AppName = "webex-troubleshooter"

	trackingIDHeader = "TrackingID"
)

type httpWebexAdapter struct {
	client     *utils.HTTPClient
	trackingID *utils.TrackingIDGenerator

	logger *logger.Logger
}

// NewHTTPWebexAdapter constructs a resty implementation of [WebexAdapter].
// It normalises adapterCfg.BaseURL with [config.NormalizeBaseURL], configures
// the request timeout, and installs hooks that log every request outcome.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPWebexAdapter(adapterCfg config.Adapter, version string, log *logger.Logger) (WebexAdapter, error) {
	baseURL, err := config.NormalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	userAgent := AppName
	if version != "" {
		userAgent += "/" + version
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, userAgent)
	a := &httpWebexAdapter{
		client:     client,
		trackingID: utils.NewTrackingIDGenerator(AppName),
		logger:     log,
	}

	client.OnAfterResponse(a.logResponse)
	client.OnError(a.logError)

	return a, nil
}

// Me implements [WebexAdapter]. It GETs /people/me and decodes the profile.
func (h *httpWebexAdapter) Me(ctx context.Context, token string) (models.Person, error) {
	req, err := h.authedRequest(ctx, token)
	if err != nil {
		return models.Person{}, err
	}

	resp, err := req.Get("/people/me")
	if err != nil {
		return models.Person{}, fmt.Errorf("get person request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Person{}, err
	}

	var person models.Person
	if err = decodeBody(resp, &person); err != nil {
		return models.Person{}, fmt.Errorf("decode person response: %w", err)
	}
	return person, nil
}

// ListRooms implements [WebexAdapter]. It GETs /rooms and returns the items
// array untouched. A response without an items array is malformed.
func (h *httpWebexAdapter) ListRooms(ctx context.Context, token string) ([]models.Room, error) {
	req, err := h.authedRequest(ctx, token)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/rooms")
	if err != nil {
		return nil, fmt.Errorf("list rooms request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.RoomList
	if err = decodeBody(resp, &list); err != nil {
		return nil, fmt.Errorf("decode rooms response: %w", err)
	}
	if list.Items == nil {
		return nil, fmt.Errorf("decode rooms response: %w: no items array", ErrMalformedResponse)
	}
	return list.Items, nil
}

// CreateRoom implements [WebexAdapter]. It POSTs {"title": title} to /rooms.
func (h *httpWebexAdapter) CreateRoom(ctx context.Context, token string, title string) (models.Room, error) {
	req, err := h.authedRequest(ctx, token)
	if err != nil {
		return models.Room{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateRoomRequest{Title: title}).
		Post("/rooms")
	if err != nil {
		return models.Room{}, fmt.Errorf("create room request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Room{}, err
	}

	var room models.Room
	if err = decodeBody(resp, &room); err != nil {
		return models.Room{}, fmt.Errorf("decode created room: %w", err)
	}
	return room, nil
}

// SendMessage implements [WebexAdapter]. It POSTs the message to /messages.
// The created message returned by the API is not decoded.
func (h *httpWebexAdapter) SendMessage(ctx context.Context, token string, message models.Message) error {
	req, err := h.authedRequest(ctx, token)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("send message request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpWebexAdapter) authedRequest(ctx context.Context, token string) (*resty.Request, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader(trackingIDHeader, h.trackingID.Generate()), nil
}

func decodeBody(resp *resty.Response, v any) error {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// logResponse records every completed round trip. The Authorization header
// is never logged.
func (h *httpWebexAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	event := h.logger.Debug()
	if !resp.IsSuccess() {
		event = h.logger.Warn()
	}

	event.
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("tracking_id", resp.Request.Header.Get(trackingIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("webex api call")
	return nil
}

func (h *httpWebexAdapter) logError(req *resty.Request, err error) {
	h.logger.Error().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Str("tracking_id", req.Header.Get(trackingIDHeader)).
		Msg("webex api call failed")
}
