// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerson_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{
			name:    "complete profile",
			payload: `{"id":"u1","displayName":"A","nickName":"a","emails":["a@x.com"]}`,
		},
		{
			name:    "empty emails array is accepted",
			payload: `{"id":"u1","displayName":"A","nickName":"a","emails":[]}`,
		},
		{
			name:    "missing display name",
			payload: `{"id":"u1","nickName":"a","emails":["a@x.com"]}`,
			wantErr: ErrIncompleteProfile,
		},
		{
			name:    "missing nickname",
			payload: `{"id":"u1","displayName":"A","emails":["a@x.com"]}`,
			wantErr: ErrIncompleteProfile,
		},
		{
			name:    "empty display name",
			payload: `{"id":"u1","displayName":"","nickName":"a","emails":["a@x.com"]}`,
			wantErr: ErrIncompleteProfile,
		},
		{
			name:    "empty nickname",
			payload: `{"id":"u1","displayName":"A","nickName":"","emails":["a@x.com"]}`,
			wantErr: ErrIncompleteProfile,
		},
		{
			name:    "missing emails",
			payload: `{"id":"u1","displayName":"A","nickName":"a"}`,
			wantErr: ErrIncompleteProfile,
		},
		{
			name:    "null emails",
			payload: `{"id":"u1","displayName":"A","nickName":"a","emails":null}`,
			wantErr: ErrIncompleteProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Person
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &p))

			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
