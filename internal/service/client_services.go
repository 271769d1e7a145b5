// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/webex-troubleshooter/internal/adapter"

// ClientServices groups the services used by the interactive client.
type ClientServices struct {
	TroubleshootService ClientTroubleshootService
}

// NewClientServices wires every client service on top of webexAdapter.
func NewClientServices(webexAdapter adapter.WebexAdapter) (*ClientServices, error) {
	if webexAdapter == nil {
		return nil, ErrNoAdapter
	}

	return &ClientServices{
		TroubleshootService: NewClientTroubleshootService(webexAdapter),
	}, nil
}
