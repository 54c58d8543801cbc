// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs.
//
// A [Scheduler] owns a set of named jobs, ticks each on its own interval and
// runs them on demand. Runs of the same job never overlap; a run that finds
// the job busy is reported as skipped. Failures are logged, counted and
// published as notifications but never stop the scheduler.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-sync/models"
)

// Notifier publishes job lifecycle notifications.
type Notifier interface {
	Notify(ctx context.Context, name string, payload any)
}

// JobMetrics receives job counters and timings.
type JobMetrics interface {
	ObserveJob(job, result string, duration time.Duration)
	AddJobRetry(job string)
	AddRunningJob(job string)
	RemoveRunningJob(job string)
}

// SyncRunner is the part of the sync engine the sync jobs drive.
type SyncRunner interface {
	Enabled() bool
	Start(ctx context.Context) (models.StatusInfo, error)
	Reconcile(ctx context.Context) (models.StatusInfo, error)
}
