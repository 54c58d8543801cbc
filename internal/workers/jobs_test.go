// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/mock"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/models"
)

// fakeEngine is a SyncRunner with canned answers.
type fakeEngine struct {
	enabled    bool
	status     models.StatusInfo
	err        error
	starts     int
	reconciles int
}

func (e *fakeEngine) Enabled() bool { return e.enabled }

func (e *fakeEngine) Start(context.Context) (models.StatusInfo, error) {
	e.starts++
	return e.status, e.err
}

func (e *fakeEngine) Reconcile(context.Context) (models.StatusInfo, error) {
	e.reconciles++
	return e.status, e.err
}

func TestSyncJobs(t *testing.T) {
	remoteErr := errors.New("relay exploded")

	tests := []struct {
		name    string
		engine  *fakeEngine
		wantErr error
		wantRun bool
	}{
		{name: "disabled engine is skipped", engine: &fakeEngine{}, wantErr: ErrSkipped},
		{name: "pass completes", engine: &fakeEngine{enabled: true}, wantRun: true},
		{name: "busy engine is skipped", engine: &fakeEngine{enabled: true, status: models.StatusInfo{Skipped: true}}, wantErr: ErrSkipped, wantRun: true},
		{name: "engine not ready is skipped", engine: &fakeEngine{enabled: true, err: service.ErrSyncDisabled}, wantErr: ErrSkipped, wantRun: true},
		{name: "failure propagates", engine: &fakeEngine{enabled: true, err: remoteErr}, wantErr: remoteErr, wantRun: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncJob := NewSyncJob(tt.engine, time.Minute)
			fullJob := NewFullSyncJob(tt.engine, time.Hour)
			assert.Equal(t, JobSync, syncJob.Name)
			assert.Equal(t, JobFullSync, fullJob.Name)

			for _, j := range []Job{syncJob, fullJob} {
				err := j.Run(context.Background())
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.NoError(t, err)
				}
			}

			if tt.wantRun {
				assert.Equal(t, 1, tt.engine.starts)
				assert.Equal(t, 1, tt.engine.reconciles)
			} else {
				assert.Zero(t, tt.engine.starts+tt.engine.reconciles)
			}
		})
	}
}

func TestCleanupJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockLocalDatabase(ctrl)
	changelog := mock.NewMockChangelogRepository(ctrl)
	retention := 24 * time.Hour

	db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(q store.Querier) error) error {
			return fn(nil)
		}).Times(2)

	gomock.InOrder(
		changelog.EXPECT().DeleteSyncedBefore(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ store.Querier, before time.Time) (int64, error) {
				assert.WithinDuration(t, time.Now().Add(-retention), before, time.Minute)
				return 7, nil
			}),
		changelog.EXPECT().DeleteSyncedBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk I/O error")),
	)

	j := NewCleanupJob(db, changelog, 6*time.Hour, retention, logger.Nop())
	assert.Equal(t, JobCleanup, j.Name)
	assert.Equal(t, 6*time.Hour, j.Interval)

	require.NoError(t, j.Run(context.Background()))
	assert.Error(t, j.Run(context.Background()))
}

func TestRegisterClientJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestScheduler(t, 0)
	cfg := config.ClientWorkers{
		SyncInterval:     5 * time.Minute,
		FullSyncInterval: 30 * time.Minute,
		CleanupInterval:  6 * time.Hour,
		CleanupRetention: 7 * 24 * time.Hour,
	}

	err := RegisterClientJobs(s, cfg, &fakeEngine{}, mock.NewMockLocalDatabase(ctrl), mock.NewMockChangelogRepository(ctrl), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{JobSync, JobFullSync, JobCleanup}, s.Jobs())

	result, err := s.Trigger(context.Background(), EventOnline)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	assert.ErrorIs(t, RegisterClientJobs(s, cfg, &fakeEngine{}, nil, nil, logger.Nop()), ErrJobExists)
}
