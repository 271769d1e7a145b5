// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// responseWith performs a real round trip so mapHTTPError sees a genuine
// *resty.Response.
func responseWith(t *testing.T, status int, body string) *resty.Response {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{status: http.StatusOK},
		{status: http.StatusNoContent},
		{status: http.StatusBadRequest, body: "bad title", wantErr: ErrBadRequest, wantMsg: "bad title"},
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{status: http.StatusForbidden, wantErr: ErrForbidden},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{status: http.StatusTeapot, wantMsg: "http 418: I'm a teapot"},
		{status: http.StatusConflict, body: "locked", wantMsg: "http 409: locked"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			err := mapHTTPError(responseWith(t, tt.status, tt.body))

			if tt.wantErr == nil && tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestErrorBody(t *testing.T) {
	assert.Equal(t, "boom", errorBody([]byte(`{"message":"boom"}`)))
	assert.Equal(t, "boom (trackingId T1)", errorBody([]byte(`{"message":"boom","trackingId":"T1"}`)))
	assert.Equal(t, "plain text", errorBody([]byte("  plain text \n")))
	assert.Equal(t, `{"errors":[]}`, errorBody([]byte(`{"errors":[]}`)))
}
