// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/models"
)

func TestRoutes(t *testing.T) {
	relay := newTestRelay(t)
	router := relay.server.Config.Handler
	token := relay.token(t, "alice")

	tests := []struct {
		name       string
		method     string
		target     string
		body       []byte
		headers    map[string]string
		noAuth     bool
		wantStatus int
	}{
		{
			name:       "version needs no token",
			method:     http.MethodGet,
			target:     versionRoute,
			noAuth:     true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "changes without token",
			method:     http.MethodGet,
			target:     changesRoute,
			noAuth:     true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unsupported method hides the route",
			method:     http.MethodDelete,
			target:     fullRoute,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown path",
			method:     http.MethodGet,
			target:     "/api/sync/v2/changes",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed since",
			method:     http.MethodGet,
			target:     changesRoute + "?since=yesterday",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "changes since a valid time",
			method:     http.MethodGet,
			target:     changesRoute + "?since=2026-01-02T03:04:05.000000006Z",
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid changes JSON",
			method:     http.MethodPost,
			target:     changesRoute,
			body:       []byte(`{"id":"not an array"}`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "attachment without path",
			method:     http.MethodGet,
			target:     attachmentsRoute,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "attachment path escaping the store",
			method:     http.MethodPost,
			target:     attachmentsRoute + "?path=../etc/passwd",
			body:       []byte("x"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "snapshot body does not match its hash",
			method:     http.MethodPost,
			target:     fullRoute,
			body:       []byte("image"),
			headers:    map[string]string{models.ContentHashHeader: utils.SHA256Hex([]byte("other image"))},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty snapshot",
			method:     http.MethodPost,
			target:     fullRoute,
			body:       []byte{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "snapshot upload",
			method:     http.MethodPost,
			target:     fullRoute,
			body:       []byte("image"),
			headers:    map[string]string{models.ContentHashHeader: utils.SHA256Hex([]byte("image"))},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, bytes.NewReader(tt.body))
			if !tt.noAuth {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: empty path", service.ErrInvalidDataProvided), want: http.StatusBadRequest},
		{name: "expired token", err: service.ErrTokenIsExpired, want: http.StatusUnauthorized},
		{name: "missing blob", err: fmt.Errorf("get snapshot: %w", store.ErrBlobNotFound), want: http.StatusNotFound},
		{name: "query failure", err: fmt.Errorf("list: %w", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unclassified", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
