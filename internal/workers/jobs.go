// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/models"
)

// Job names.
const (
	JobSync     = "sync"
	JobFullSync = "fullSync"
	JobCleanup  = "cleanup"
)

// NewSyncJob runs an incremental pass.
func NewSyncJob(engine SyncRunner, interval time.Duration) Job {
	return Job{Name: JobSync, Interval: interval, Run: passJob(engine, engine.Start)}
}

// NewFullSyncJob re-pulls the whole relay changelog.
func NewFullSyncJob(engine SyncRunner, interval time.Duration) Job {
	return Job{Name: JobFullSync, Interval: interval, Run: passJob(engine, engine.Reconcile)}
}

func passJob(engine SyncRunner, pass func(ctx context.Context) (models.StatusInfo, error)) JobFunc {
	return func(ctx context.Context) error {
		if !engine.Enabled() {
			return ErrSkipped
		}

		status, err := pass(ctx)
		switch {
		case errors.Is(err, service.ErrSyncDisabled):
			return ErrSkipped
		case err != nil:
			return err
		case status.Skipped:
			return ErrSkipped
		}
		return nil
	}
}

// NewCleanupJob prunes synced changelog entries older than retention.
func NewCleanupJob(db store.LocalDatabase, changelog store.ChangelogRepository, interval, retention time.Duration, log *logger.Logger) Job {
	return Job{
		Name:     JobCleanup,
		Interval: interval,
		Run: func(ctx context.Context) error {
			before := time.Now().Add(-retention)

			var removed int64
			err := db.WithTx(ctx, func(q store.Querier) error {
				var txErr error
				removed, txErr = changelog.DeleteSyncedBefore(ctx, q, before)
				return txErr
			})
			if err != nil {
				return err
			}

			log.Info().Str("func", "cleanupJob").Int64("removed", removed).Time("before", before).Msg("synced changelog entries pruned")
			return nil
		},
	}
}

// RegisterClientJobs registers the sync, fullSync and cleanup jobs.
func RegisterClientJobs(s *Scheduler, cfg config.ClientWorkers, engine SyncRunner, db store.LocalDatabase, changelog store.ChangelogRepository, log *logger.Logger) error {
	jobs := []Job{
		NewSyncJob(engine, cfg.SyncInterval),
		NewFullSyncJob(engine, cfg.FullSyncInterval),
		NewCleanupJob(db, changelog, cfg.CleanupInterval, cfg.CleanupRetention, log),
	}
	for _, j := range jobs {
		if err := s.Register(j); err != nil {
			return err
		}
	}
	return nil
}
