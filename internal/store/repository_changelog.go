// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

type changelogRepository struct {
	logger *logger.Logger
}

// NewChangelogRepository returns the SQLite changelog repository.
func NewChangelogRepository(log *logger.Logger) ChangelogRepository {
	return &changelogRepository{logger: log}
}

func (r *changelogRepository) AppendEntry(ctx context.Context, q Querier, entry models.ChangelogEntry) error {
	status := entry.SyncStatus
	if status == "" {
		status = models.SyncStatusPending
	}

	query, args, err := sqliteBuilder.Insert("changelog").
		Columns(changelogColumns...).
		Values(
			entry.ID,
			entry.DeviceID,
			entry.Sequence,
			string(entry.EntityKind),
			entry.EntityID,
			string(entry.Operation),
			entry.Payload,
			entry.CreatedAt.UnixNano(),
			string(status),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "changelogRepository.AppendEntry").
			Str("entry_id", entry.ID).
			Msg("failed to insert changelog entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *changelogRepository) ListUnsynced(ctx context.Context, q Querier, limit uint64) ([]models.ChangelogEntry, error) {
	builder := sqliteBuilder.Select(changelogColumns...).
		From("changelog").
		Where(sq.Eq{"sync_status": string(models.SyncStatusPending)}).
		OrderBy("created_at", "device_id", "sequence")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "changelogRepository.ListUnsynced").Msg("failed to query unsynced entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.ChangelogEntry
	for rows.Next() {
		var (
			e         models.ChangelogEntry
			kind, op  string
			status    string
			createdAt int64
		)
		if err = rows.Scan(&e.ID, &e.DeviceID, &e.Sequence, &kind, &e.EntityID, &op, &e.Payload, &createdAt, &status); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.EntityKind = models.EntityKind(kind)
		e.Operation = models.Operation(op)
		e.SyncStatus = models.SyncStatus(status)
		e.CreatedAt = time.Unix(0, createdAt).UTC()
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *changelogRepository) CountUnsynced(ctx context.Context, q Querier) (int64, error) {
	query, args, err := sqliteBuilder.Select("COUNT(*)").
		From("changelog").
		Where(sq.Eq{"sync_status": string(models.SyncStatusPending)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return count, nil
}

func (r *changelogRepository) MarkSynced(ctx context.Context, q Querier, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqliteBuilder.Update("changelog").
		Set("sync_status", string(models.SyncStatusSynced)).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "changelogRepository.MarkSynced").
			Int("count", len(ids)).
			Msg("failed to mark entries synced")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *changelogRepository) MarkAllPending(ctx context.Context, q Querier) (int64, error) {
	query, args, err := sqliteBuilder.Update("changelog").
		Set("sync_status", string(models.SyncStatusPending)).
		Where(sq.NotEq{"sync_status": string(models.SyncStatusPending)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "changelogRepository.MarkAllPending").Msg("failed to requeue entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}

func (r *changelogRepository) DeleteEntries(ctx context.Context, q Querier, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqliteBuilder.Delete("changelog").Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *changelogRepository) DeleteSyncedBefore(ctx context.Context, q Querier, before time.Time) (int64, error) {
	query, args, err := sqliteBuilder.Delete("changelog").
		Where(sq.Eq{"sync_status": string(models.SyncStatusSynced)}).
		Where(sq.Lt{"created_at": before.UnixNano()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "changelogRepository.DeleteSyncedBefore").Msg("failed to prune changelog")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}

func (r *changelogRepository) Clear(ctx context.Context, q Querier) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM changelog`); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
