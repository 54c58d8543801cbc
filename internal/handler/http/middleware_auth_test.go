// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "scheme is case insensitive", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer    ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic YWxpY2U6cHc=", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuth(t *testing.T) {
	tokens := service.NewTokenService(testSignKey, testIssuer, time.Hour, logger.Nop())
	h := &Handler{services: &service.RelayServices{Tokens: tokens}, logger: logger.Nop()}

	valid, err := tokens.IssueToken("alice")
	require.NoError(t, err)
	expired, err := service.NewTokenService(testSignKey, testIssuer, time.Nanosecond, logger.Nop()).IssueToken("alice")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	tests := []struct {
		name         string
		header       string
		wantStatus   int
		wantUsername string
	}{
		{name: "valid token", header: "Bearer " + valid.SignedString, wantStatus: http.StatusOK, wantUsername: "alice"},
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: valid.SignedString, wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + expired.SignedString, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer garbage", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var username string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				username, _ = utils.GetUsernameFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, changesRoute, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUsername, username)
		})
	}
}
