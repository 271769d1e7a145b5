// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/webex-troubleshooter/internal/logger"
	"github.com/MKhiriev/webex-troubleshooter/internal/tui"
	"github.com/MKhiriev/webex-troubleshooter/models"
)

// ErrNoShell is returned by [NewApp] when no shell is supplied.
var ErrNoShell = errors.New("shell is not configured")

// App is the troubleshooting client.
type App struct {
	shell     Shell
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewApp creates the client application on top of shell.
func NewApp(shell Shell, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if shell == nil {
		return nil, ErrNoShell
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{shell: shell, buildInfo: buildInfo, logger: log}, nil
}

// Run reads the token and runs the menu loop. Closing the input or aborting
// the token prompt ends the application without error.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.logger.Info().
		Str("version", a.buildInfo.BuildVersion()).
		Str("commit", a.buildInfo.BuildCommit()).
		Msg("troubleshooter started")

	session, err := a.shell.ReadToken(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("no token entered, exiting")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}

	if err = a.shell.MainLoop(ctx, session); err != nil {
		return fmt.Errorf("main loop: %w", err)
	}

	a.logger.Info().Msg("troubleshooter finished")
	return nil
}
