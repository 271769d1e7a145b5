// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrOperationFailed marks every failed Webex operation.
	ErrOperationFailed = errors.New("operation failed")
	// ErrNoToken is returned when an operation is invoked without a token.
	ErrNoToken = errors.New("no token provided")
	// ErrInvalidRoomChoice is returned by [SelectRoom] for any input that is
	// not the 1-based index of a listed room.
	ErrInvalidRoomChoice = errors.New("invalid room choice")
	// ErrNoAdapter is returned by [NewClientServices] when no transport is given.
	ErrNoAdapter = errors.New("webex adapter is not configured")
)
