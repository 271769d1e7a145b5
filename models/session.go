// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Session carries the bearer token captured at startup. It is passed
// explicitly to every operation and is never written to disk or logs.
type Session struct {
	token string
}

// NewSession returns a Session holding the whitespace-trimmed token.
func NewSession(token string) Session {
	return Session{token: strings.TrimSpace(token)}
}

// Token returns the bearer token.
func (s Session) Token() string {
	return s.token
}

// Empty reports whether no token was supplied.
func (s Session) Empty() bool {
	return s.token == ""
}

// String masks the token so a Session can be printed or logged safely.
func (s Session) String() string {
	if s.Empty() {
		return "<empty>"
	}
	return "<redacted>"
}

// GoString masks the token for the %#v verb.
func (s Session) GoString() string {
	return "models.Session{" + s.String() + "}"
}
