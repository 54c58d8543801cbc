// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-notes-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=Querier

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// LocalDatabase is the swappable client database.
type LocalDatabase interface {
	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(q Querier) error) error
	// View runs fn against the database outside a transaction.
	View(ctx context.Context, fn func(q Querier) error) error
	// SnapshotTo writes a consistent copy of the database to path.
	SnapshotTo(ctx context.Context, path string) error
	// Replace validates the database file at path and atomically installs
	// it in place of the current one. The old database stays in use when
	// validation fails.
	Replace(ctx context.Context, path string) error
	// Dir is the directory holding the database file. Temporary files meant
	// for Replace must be created there.
	Dir() string
}

// ChangelogRepository reads and writes the local changelog.
type ChangelogRepository interface {
	AppendEntry(ctx context.Context, q Querier, entry models.ChangelogEntry) error
	ListUnsynced(ctx context.Context, q Querier, limit uint64) ([]models.ChangelogEntry, error)
	CountUnsynced(ctx context.Context, q Querier) (int64, error)
	MarkSynced(ctx context.Context, q Querier, ids []string) error
	// MarkAllPending queues every stored entry for upload again.
	MarkAllPending(ctx context.Context, q Querier) (int64, error)
	DeleteEntries(ctx context.Context, q Querier, ids []string) error
	DeleteSyncedBefore(ctx context.Context, q Querier, before time.Time) (int64, error)
	Clear(ctx context.Context, q Querier) error
}

// EntityRepository reads and writes local entities with last-writer-wins.
type EntityRepository interface {
	// Apply stores entity unless a revision with a later or equal clock is
	// already present. It reports whether the row changed.
	Apply(ctx context.Context, q Querier, entity models.Entity) (bool, error)
	Get(ctx context.Context, q Querier, kind models.EntityKind, id string) (models.Entity, error)
	List(ctx context.Context, q Querier, kind models.EntityKind) ([]models.Entity, error)
	// NextSequence allocates the next per-device sequence number.
	NextSequence(ctx context.Context, q Querier, deviceID string) (int64, error)
	CurrentSequence(ctx context.Context, q Querier, deviceID string) (int64, error)
	// RaiseSequence sets the device sequence to at least seq.
	RaiseSequence(ctx context.Context, q Querier, deviceID string, seq int64) error
}

// SyncInfoStore persists sync configuration, the cursor and the device id.
type SyncInfoStore interface {
	GetSyncInfo(ctx context.Context) (models.SyncInfo, bool, error)
	SaveSyncInfo(ctx context.Context, info models.SyncInfo) error
	GetCursor(ctx context.Context) (models.SyncCursor, error)
	SaveCursor(ctx context.Context, cursor models.SyncCursor) error
	GetDeviceID(ctx context.Context) (string, error)
	SaveDeviceID(ctx context.Context, deviceID string) error
	// Clear removes sync info and the cursor. The device id survives.
	Clear(ctx context.Context) error
}

// AttachmentFileStore keeps plaintext attachment files on disk.
type AttachmentFileStore interface {
	Put(ctx context.Context, path string, data []byte) error
	Get(ctx context.Context, path string) ([]byte, error)
	Exists(ctx context.Context, path string) (bool, error)
	Delete(ctx context.Context, path string) error
}

// RelayRepository stores opaque per-user data on the relay.
type RelayRepository interface {
	RegisterClient(ctx context.Context, username, clientID string) error
	// StoreChanges stamps and stores entries not yet present, returning how
	// many were new. ReceivedAt values are strictly increasing.
	StoreChanges(ctx context.Context, username string, entries []models.ChangelogEntry) (int, error)
	// ListChanges returns entries received after since (all when nil),
	// ordered by ReceivedAt.
	ListChanges(ctx context.Context, username string, since *time.Time) ([]models.ChangelogEntry, error)
	PutSnapshot(ctx context.Context, username string, data []byte) error
	GetSnapshot(ctx context.Context, username string) (models.RelayBlob, error)
	PutAttachment(ctx context.Context, username, path string, data []byte) error
	GetAttachment(ctx context.Context, username, path string) (models.RelayBlob, error)
	Close() error
}
