// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Person is the Webex profile of the token owner as returned by
// GET /people/me. Only the fields the tool displays are decoded; the rest of
// the payload is ignored.
type Person struct {
	// ID is the opaque Webex person identifier.
	ID string `json:"id"`

	// DisplayName is the full name shown in Webex clients.
	DisplayName string `json:"displayName"`

	// NickName is the short name of the user.
	NickName string `json:"nickName"`

	// Emails lists every email address registered for the account.
	// A nil slice means the field was absent from the response.
	Emails []string `json:"emails"`
}

// Validate reports [ErrIncompleteProfile] when the display name or nickname
// is missing or empty, or when the emails array is missing or null. An empty,
// but present, emails array is accepted.
func (p Person) Validate() error {
	if p.DisplayName == "" || p.NickName == "" || p.Emails == nil {
		return ErrIncompleteProfile
	}
	return nil
}
