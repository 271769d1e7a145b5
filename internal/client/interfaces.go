// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/webex-troubleshooter/models"
)

// Shell is the operator-facing side of the application.
type Shell interface {
	// ReadToken blocks until the operator supplies a non-blank token.
	ReadToken(ctx context.Context) (models.Session, error)
	// MainLoop runs the menu until the operator exits or input ends.
	MainLoop(ctx context.Context, session models.Session) error
}
