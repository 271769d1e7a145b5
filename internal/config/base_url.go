// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
	"strings"
)

var (
	errEmptyBaseURL  = errors.New("empty address")
	errBaseURLNoHost = errors.New("address must include host and scheme")
)

// NormalizeBaseURL trims raw, defaults a missing scheme to https and drops
// trailing slashes. The result always carries a scheme and a host.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errBaseURLNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}
