// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrIncompleteProfile is returned when a person payload lacks the display
	// name, nickname or emails collection.
	ErrIncompleteProfile = errors.New("profile is missing required fields")

	// ErrIncompleteRoom is returned when a room payload lacks id or title.
	ErrIncompleteRoom = errors.New("room is missing required fields")
)
