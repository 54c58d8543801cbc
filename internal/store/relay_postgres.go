// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

type relayRepository struct {
	*DB

	// stampMu serializes StoreChanges from stamping to commit so that a
	// reader never observes a later received_at before an earlier one.
	stampMu sync.Mutex
	backoff func() retry.Backoff
	now     func() time.Time
	logger  *logger.Logger
}

// NewRelayRepository returns the PostgreSQL relay repository.
func NewRelayRepository(db *DB, log *logger.Logger) RelayRepository {
	return &relayRepository{
		DB: db,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(3, retry.NewExponential(50*time.Millisecond))
		},
		now:    time.Now,
		logger: log,
	}
}

// withRetry retries fn while the classifier reports a transient failure.
func (r *relayRepository) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	return retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && r.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (r *relayRepository) RegisterClient(ctx context.Context, username, clientID string) error {
	return r.withRetry(ctx, func(ctx context.Context) error {
		if _, err := r.ExecContext(ctx, registerRelayClient, username, clientID); err != nil {
			r.logger.Err(err).
				Str("func", "relayRepository.RegisterClient").
				Str("pg_code", postgresError(err)).
				Msg("failed to register client")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *relayRepository) StoreChanges(ctx context.Context, username string, entries []models.ChangelogEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	r.stampMu.Lock()
	defer r.stampMu.Unlock()

	var stored int
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var err error
		stored, err = r.storeChangesTx(ctx, username, entries)
		return err
	})
	return stored, err
}

func (r *relayRepository) storeChangesTx(ctx context.Context, username string, entries []models.ChangelogEntry) (int, error) {
	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var last sql.NullTime
	if err = tx.QueryRowContext(ctx, maxRelayReceivedAt, username).Scan(&last); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	stamp := r.now().UTC().Truncate(time.Microsecond)
	if last.Valid && !stamp.After(last.Time) {
		stamp = last.Time.UTC().Add(time.Microsecond)
	}

	stored := 0
	for _, e := range entries {
		res, execErr := tx.ExecContext(ctx, insertRelayChange,
			username,
			e.ID,
			e.DeviceID,
			e.Sequence,
			string(e.EntityKind),
			e.EntityID,
			string(e.Operation),
			e.Payload,
			e.CreatedAt.UTC(),
			stamp,
		)
		if execErr != nil {
			r.logger.Err(execErr).
				Str("func", "relayRepository.StoreChanges").
				Str("pg_code", postgresError(execErr)).
				Str("entry_id", e.ID).
				Msg("failed to insert change")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			stored++
			stamp = stamp.Add(time.Microsecond)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return stored, nil
}

func (r *relayRepository) ListChanges(ctx context.Context, username string, since *time.Time) ([]models.ChangelogEntry, error) {
	builder := pgBuilder.Select(
		"id",
		"device_id",
		"sequence",
		"entity_kind",
		"entity_id",
		"operation",
		"payload",
		"created_at",
		"received_at",
	).
		From("relay_changes").
		Where(sq.Eq{"username": username}).
		OrderBy("received_at", "id")
	if since != nil {
		builder = builder.Where(sq.Gt{"received_at": since.UTC()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "relayRepository.ListChanges").Msg("failed to query changes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ChangelogEntry, 0)
	for rows.Next() {
		var (
			e        models.ChangelogEntry
			kind, op string
		)
		if err = rows.Scan(&e.ID, &e.DeviceID, &e.Sequence, &kind, &e.EntityID, &op, &e.Payload, &e.CreatedAt, &e.ReceivedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.EntityKind = models.EntityKind(kind)
		e.Operation = models.Operation(op)
		e.CreatedAt = e.CreatedAt.UTC()
		e.ReceivedAt = e.ReceivedAt.UTC()
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return entries, nil
}

func (r *relayRepository) PutSnapshot(ctx context.Context, username string, data []byte) error {
	return r.putBlob(ctx, username, blobKindSnapshot, snapshotPath, data)
}

func (r *relayRepository) GetSnapshot(ctx context.Context, username string) (models.RelayBlob, error) {
	return r.getBlob(ctx, username, blobKindSnapshot, snapshotPath)
}

func (r *relayRepository) PutAttachment(ctx context.Context, username, path string, data []byte) error {
	return r.putBlob(ctx, username, blobKindAttachment, path, data)
}

func (r *relayRepository) GetAttachment(ctx context.Context, username, path string) (models.RelayBlob, error) {
	return r.getBlob(ctx, username, blobKindAttachment, path)
}

func (r *relayRepository) putBlob(ctx context.Context, username, kind, path string, data []byte) error {
	return r.withRetry(ctx, func(ctx context.Context) error {
		if _, err := r.ExecContext(ctx, putRelayBlob, username, kind, path, data, r.now().UTC()); err != nil {
			r.logger.Err(err).
				Str("func", "relayRepository.putBlob").
				Str("pg_code", postgresError(err)).
				Str("kind", kind).
				Msg("failed to store blob")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *relayRepository) getBlob(ctx context.Context, username, kind, path string) (models.RelayBlob, error) {
	blob := models.RelayBlob{Username: username, Path: path}
	err := r.QueryRowContext(ctx, getRelayBlob, username, kind, path).Scan(&blob.Data, &blob.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RelayBlob{}, ErrBlobNotFound
	}
	if err != nil {
		return models.RelayBlob{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return blob, nil
}

func (r *relayRepository) Close() error {
	return r.DB.Close()
}
