// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Jobs(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	m.AddRunningJob("sync")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.jobsRunning.WithLabelValues("sync")))
	m.RemoveRunningJob("sync")
	assert.Equal(t, float64(0), testutil.ToFloat64(m.jobsRunning.WithLabelValues("sync")))

	m.ObserveJob("sync", JobFinished, time.Second)
	m.ObserveJob("sync", JobFailed, time.Second)
	m.ObserveJob("sync", JobSkipped, 0)
	m.AddJobRetry("sync")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.jobRunsTotal.WithLabelValues("sync", JobFinished)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.jobRunsTotal.WithLabelValues("sync", JobFailed)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.jobRunsTotal.WithLabelValues("sync", JobSkipped)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.jobRetriesTotal.WithLabelValues("sync")))
	// skipped runs are not timed
	assert.Equal(t, 1, testutil.CollectAndCount(m.jobDurationSeconds))
}

func TestMetrics_RelayAndHandler(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	m.ObserveRelayRequest(http.MethodPost, "/api/sync/v1/changes", http.StatusCreated, 10*time.Millisecond)
	m.AddStoredChanges(3)
	m.AddStoredChanges(0)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.relayRequestsTotal.WithLabelValues(http.MethodPost, "/api/sync/v1/changes", "201")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.relayStoredChangesTotal))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "notes_sync_relay_stored_changes_total 3"))
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}

func TestMetrics_HandlerLeavesCompressionToCaller(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
