// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

func TestWithLoggingAndTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"stored":2}`))
	})
	chain := h.withTraceID(h.withLogging(next))

	tests := []struct {
		name        string
		traceID     string
		wantTraceID string
	}{
		{name: "trace id from the caller", traceID: "trace-123", wantTraceID: "trace-123"},
		{name: "generated trace id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			req := httptest.NewRequest(http.MethodPost, changesRoute+"?x=1", nil)
			if tt.traceID != "" {
				req.Header.Set(traceIDHeader, tt.traceID)
			}
			rec := httptest.NewRecorder()
			chain.ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.wantTraceID != "" {
				assert.Equal(t, tt.wantTraceID, got)
			} else {
				assert.Len(t, got, 36)
			}

			line := buf.String()
			assert.Contains(t, line, `"trace_id":"`+got+`"`)
			assert.Contains(t, line, `"method":"POST"`)
			assert.Contains(t, line, `"uri":"/api/sync/v1/changes?x=1"`)
			assert.Contains(t, line, `"status":201`)
			assert.Contains(t, line, `"size":12`)
		})
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}
	assert.Equal(t, http.StatusOK, w.statusCode())

	_, _ = w.Write([]byte("abc"))
	w.WriteHeader(http.StatusTeapot)
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, w.statusCode())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, w.size)
}
