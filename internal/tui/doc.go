// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive troubleshooting shell.
//
// The shell has two states. It first asks for a Webex access token (masked
// with a Bubble Tea text input when stdin is a terminal), then runs the main
// menu loop until the operator chooses Exit or input ends. Every menu action
// is delegated to [service.ClientTroubleshootService]; the shell only decides
// which success report or advisory to print.
package tui
