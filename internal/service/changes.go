// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/models"
)

// IDGenerator produces unique identifiers.
type IDGenerator interface {
	Generate() string
}

// changeRecorder writes a local mutation: the entity row with a fresh
// clock and the sealed changelog entry describing it, atomically.
type changeRecorder struct {
	db        store.LocalDatabase
	changelog store.ChangelogRepository
	entities  store.EntityRepository
	encrypter crypto.Encrypter
	entryIDs  IDGenerator
	deviceID  string
	now       func() time.Time
}

// record stores body (nil for a delete) under kind/id and returns the
// entity as written.
func (r *changeRecorder) record(ctx context.Context, kind models.EntityKind, id string, op models.Operation, body any) (models.Entity, error) {
	var raw json.RawMessage
	if body != nil && op != models.OperationDelete {
		encoded, err := json.Marshal(body)
		if err != nil {
			return models.Entity{}, fmt.Errorf("encode %s: %w", kind, err)
		}
		raw = encoded
	}

	payload, err := json.Marshal(models.ChangePayload{Body: raw})
	if err != nil {
		return models.Entity{}, fmt.Errorf("encode change payload: %w", err)
	}

	// sealed before the transaction so a slow key derivation never holds
	// the database
	sealed, err := r.encrypter.Encrypt(ctx, payload)
	if err != nil {
		return models.Entity{}, fmt.Errorf("seal change: %w", err)
	}

	entity := models.Entity{
		Kind:    kind,
		ID:      id,
		Body:    raw,
		Deleted: op == models.OperationDelete,
	}

	err = r.db.WithTx(ctx, func(q store.Querier) error {
		seq, seqErr := r.entities.NextSequence(ctx, q, r.deviceID)
		if seqErr != nil {
			return seqErr
		}
		entity.Clock = models.Clock{At: r.now().UTC(), DeviceID: r.deviceID, Sequence: seq}

		if _, applyErr := r.entities.Apply(ctx, q, entity); applyErr != nil {
			return applyErr
		}

		return r.changelog.AppendEntry(ctx, q, models.ChangelogEntry{
			ID:         r.entryIDs.Generate(),
			DeviceID:   r.deviceID,
			Sequence:   seq,
			EntityKind: kind,
			EntityID:   id,
			Operation:  op,
			Payload:    sealed,
			CreatedAt:  entity.Clock.At,
			SyncStatus: models.SyncStatusPending,
		})
	})
	if err != nil {
		return models.Entity{}, storageError("record change", err)
	}

	return entity, nil
}

// load returns the live entity or ErrNotFound.
func (r *changeRecorder) load(ctx context.Context, kind models.EntityKind, id string) (models.Entity, error) {
	var entity models.Entity
	err := r.db.View(ctx, func(q store.Querier) error {
		var getErr error
		entity, getErr = r.entities.Get(ctx, q, kind, id)
		return getErr
	})
	if err != nil {
		if errorsIsNotFound(err) {
			return models.Entity{}, fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
		}
		return models.Entity{}, storageError("load entity", err)
	}
	if entity.Deleted {
		return models.Entity{}, fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}
	return entity, nil
}

func (r *changeRecorder) list(ctx context.Context, kind models.EntityKind) ([]models.Entity, error) {
	var entities []models.Entity
	err := r.db.View(ctx, func(q store.Querier) error {
		var listErr error
		entities, listErr = r.entities.List(ctx, q, kind)
		return listErr
	})
	if err != nil {
		return nil, storageError("list entities", err)
	}
	return entities, nil
}
