// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when the operator aborts the token prompt.
	ErrUserQuit = errors.New("user quit")
	// ErrNoServices is returned by [New] when no services are supplied.
	ErrNoServices = errors.New("client services are not configured")
)
