// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It drives the shell through its two states: reading the access token and
// running the troubleshooting menu until the operator exits.
package client
