// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

type entityRepository struct {
	logger *logger.Logger
}

// NewEntityRepository returns the SQLite entity repository.
func NewEntityRepository(log *logger.Logger) EntityRepository {
	return &entityRepository{logger: log}
}

func (r *entityRepository) Apply(ctx context.Context, q Querier, entity models.Entity) (bool, error) {
	var body []byte
	if len(entity.Body) > 0 {
		body = entity.Body
	}

	res, err := q.ExecContext(ctx, applyEntity,
		string(entity.Kind),
		entity.ID,
		body,
		entity.Deleted,
		entity.Clock.At.UnixNano(),
		entity.Clock.DeviceID,
		entity.Clock.Sequence,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "entityRepository.Apply").
			Str("kind", string(entity.Kind)).
			Str("id", entity.ID).
			Msg("failed to upsert entity")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n > 0, nil
}

func (r *entityRepository) Get(ctx context.Context, q Querier, kind models.EntityKind, id string) (models.Entity, error) {
	query, args, err := sqliteBuilder.Select(entityColumns...).
		From("entities").
		Where(sq.Eq{"kind": string(kind), "id": id}).
		ToSql()
	if err != nil {
		return models.Entity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := scanEntity(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entity{}, ErrEntityNotFound
	}
	if err != nil {
		return models.Entity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return entity, nil
}

// List returns live entities of kind ordered by id.
func (r *entityRepository) List(ctx context.Context, q Querier, kind models.EntityKind) ([]models.Entity, error) {
	query, args, err := sqliteBuilder.Select(entityColumns...).
		From("entities").
		Where(sq.Eq{"kind": string(kind), "deleted": false}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "entityRepository.List").Str("kind", string(kind)).Msg("failed to query entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entities []models.Entity
	for rows.Next() {
		entity, scanErr := scanEntity(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entities = append(entities, entity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return entities, nil
}

func (r *entityRepository) NextSequence(ctx context.Context, q Querier, deviceID string) (int64, error) {
	var seq int64
	if err := q.QueryRowContext(ctx, nextSequence, deviceID).Scan(&seq); err != nil {
		r.logger.Err(err).Str("func", "entityRepository.NextSequence").Msg("failed to allocate sequence")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return seq, nil
}

func (r *entityRepository) CurrentSequence(ctx context.Context, q Querier, deviceID string) (int64, error) {
	query, args, err := sqliteBuilder.Select("seq").
		From("device_sequences").
		Where(sq.Eq{"device_id": deviceID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return seq, nil
}

func (r *entityRepository) RaiseSequence(ctx context.Context, q Querier, deviceID string, seq int64) error {
	if _, err := q.ExecContext(ctx, raiseSequence, deviceID, seq); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntity(row rowScanner) (models.Entity, error) {
	var (
		e       models.Entity
		kind    string
		body    []byte
		clockAt int64
	)
	if err := row.Scan(&kind, &e.ID, &body, &e.Deleted, &clockAt, &e.Clock.DeviceID, &e.Clock.Sequence); err != nil {
		return models.Entity{}, err
	}
	e.Kind = models.EntityKind(kind)
	if len(body) > 0 {
		e.Body = body
	}
	e.Clock.At = time.Unix(0, clockAt).UTC()
	return e, nil
}
