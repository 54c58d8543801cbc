// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

func newTestRelayRepo(t *testing.T, now time.Time) (*relayRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := NewRelayRepository(&DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()}, l).(*relayRepository)
	repo.now = func() time.Time { return now }
	repo.backoff = func() retry.Backoff {
		return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestRelayRepository_StoreChangesStampsAfterLast(t *testing.T) {
	now := time.Date(2026, 4, 4, 4, 4, 4, 0, time.UTC)
	repo, mock := newTestRelayRepo(t, now)

	// the clock went backwards relative to the stored maximum
	last := now.Add(time.Second)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT MAX\(received_at\) FROM relay_changes`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(last))
	mock.ExpectExec(`INSERT INTO relay_changes`).
		WithArgs("alice", "a", "dev-a", int64(1), "note", "n-a", "update", []byte("cipher-a"), sqlmock.AnyArg(), last.Add(time.Microsecond)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO relay_changes`).
		WithArgs("alice", "b", "dev-a", int64(2), "note", "n-b", "update", []byte("cipher-b"), sqlmock.AnyArg(), last.Add(2*time.Microsecond)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO relay_changes`).
		WithArgs("alice", "c", "dev-a", int64(3), "note", "n-c", "update", []byte("cipher-c"), sqlmock.AnyArg(), last.Add(2*time.Microsecond)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	stored, err := repo.StoreChanges(context.Background(), "alice", []models.ChangelogEntry{
		testChange("a", 1, now),
		testChange("b", 2, now),
		testChange("c", 3, now),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelayRepository_StoreChangesRetriesTransientErrors(t *testing.T) {
	now := time.Date(2026, 4, 4, 4, 4, 4, 0, time.UTC)
	repo, mock := newTestRelayRepo(t, now)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT MAX\(received_at\)`).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT MAX\(received_at\)`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))
	mock.ExpectExec(`INSERT INTO relay_changes`).
		WithArgs("alice", "a", "dev-a", int64(1), "note", "n-a", "update", []byte("cipher-a"), sqlmock.AnyArg(), now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	stored, err := repo.StoreChanges(context.Background(), "alice", []models.ChangelogEntry{testChange("a", 1, now)})
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelayRepository_StoreChangesDoesNotRetryConstraintErrors(t *testing.T) {
	repo, mock := newTestRelayRepo(t, time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT MAX\(received_at\)`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))
	mock.ExpectExec(`INSERT INTO relay_changes`).
		WillReturnError(pgError(pgerrcode.NotNullViolation))
	mock.ExpectRollback()

	_, err := repo.StoreChanges(context.Background(), "alice", []models.ChangelogEntry{testChange("a", 1, time.Now())})
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelayRepository_ListChanges(t *testing.T) {
	repo, mock := newTestRelayRepo(t, time.Now())
	since := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	received := since.Add(time.Minute)

	mock.ExpectQuery(`SELECT .+ FROM relay_changes WHERE username = \$1 AND received_at > \$2 ORDER BY received_at, id`).
		WithArgs("alice", since).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "device_id", "sequence", "entity_kind", "entity_id", "operation", "payload", "created_at", "received_at",
		}).AddRow("a", "dev-a", int64(1), "note", "n-a", "create", []byte("x"), since, received))

	got, err := repo.ListChanges(context.Background(), "alice", &since)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.OperationCreate, got[0].Operation)
	assert.True(t, got[0].ReceivedAt.Equal(received))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelayRepository_GetSnapshotNotFound(t *testing.T) {
	repo, mock := newTestRelayRepo(t, time.Now())

	mock.ExpectQuery(`SELECT data, updated_at FROM relay_blobs`).
		WithArgs("alice", blobKindSnapshot, snapshotPath).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSnapshot(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestRelayRepository_PutAttachment(t *testing.T) {
	now := time.Now().UTC()
	repo, mock := newTestRelayRepo(t, now)

	mock.ExpectExec(`INSERT INTO relay_blobs`).
		WithArgs("alice", blobKindAttachment, "img/a.png", []byte("png"), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.PutAttachment(context.Background(), "alice", "img/a.png", []byte("png")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
