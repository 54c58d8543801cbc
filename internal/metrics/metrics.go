// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the prometheus registry shared by the scheduler and
// the relay HTTP server.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "notes_sync"

	jobLabel    = "job"
	resultLabel = "result"
	methodLabel = "method"
	routeLabel  = "route"
	codeLabel   = "code"
)

// Job results used as the result label.
const (
	JobFinished = "finished"
	JobFailed   = "failed"
	JobSkipped  = "skipped"
)

// Metrics holds every collector of one process.
type Metrics struct {
	registry *prometheus.Registry

	jobRunsTotal       *prometheus.CounterVec
	jobRetriesTotal    *prometheus.CounterVec
	jobDurationSeconds *prometheus.HistogramVec
	jobsRunning        *prometheus.GaugeVec

	relayRequestsTotal      *prometheus.CounterVec
	relayResponseSeconds    *prometheus.HistogramVec
	relayStoredChangesTotal prometheus.Counter
}

// NewMetrics creates a registry with process and runtime collectors.
func NewMetrics() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}

	return &Metrics{
		registry: reg,
		jobRunsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_runs_total",
			Help:      "Total number of scheduler job runs by result.",
		}, []string{jobLabel, resultLabel}),
		jobRetriesTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_retries_total",
			Help:      "Total number of job attempts retried after a network failure.",
		}, []string{jobLabel}),
		jobDurationSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_duration_seconds",
			Help:      "Duration of scheduler job runs, retries included.",
		}, []string{jobLabel}),
		jobsRunning: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "jobs_running",
			Help:      "Number of job runs in progress.",
		}, []string{jobLabel}),
		relayRequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "relay",
			Name:      "requests_total",
			Help:      "Total number of relay HTTP requests by route and status code.",
		}, []string{methodLabel, routeLabel, codeLabel}),
		relayResponseSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "relay",
			Name:      "response_seconds",
			Help:      "Response time of relay HTTP requests.",
		}, []string{methodLabel, routeLabel}),
		relayStoredChangesTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "relay",
			Name:      "stored_changes_total",
			Help:      "Total number of changelog entries newly stored by the relay.",
		}),
	}, nil
}

// ObserveJob records one completed job run.
func (m *Metrics) ObserveJob(job, result string, duration time.Duration) {
	m.jobRunsTotal.WithLabelValues(job, result).Inc()
	if result != JobSkipped {
		m.jobDurationSeconds.WithLabelValues(job).Observe(duration.Seconds())
	}
}

func (m *Metrics) AddJobRetry(job string) {
	m.jobRetriesTotal.WithLabelValues(job).Inc()
}

func (m *Metrics) AddRunningJob(job string) {
	m.jobsRunning.WithLabelValues(job).Inc()
}

func (m *Metrics) RemoveRunningJob(job string) {
	m.jobsRunning.WithLabelValues(job).Dec()
}

// ObserveRelayRequest records one relay HTTP response.
func (m *Metrics) ObserveRelayRequest(method, route string, code int, duration time.Duration) {
	m.relayRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.relayResponseSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) AddStoredChanges(n int) {
	if n > 0 {
		m.relayStoredChangesTotal.Add(float64(n))
	}
}

// Registry returns the prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format. Compression is
// left to the relay middleware.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry, DisableCompression: true})
}
