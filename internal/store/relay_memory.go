// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-memdb"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

const (
	tblRelayClients = "clients"
	tblRelayChanges = "changes"
	tblRelayBlobs   = "blobs"
)

var relaySchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tblRelayClients: {
			Name: tblRelayClients,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:   "id",
					Unique: true,
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "Username"},
							&memdb.StringFieldIndex{Field: "ClientID"},
						},
					},
				},
			},
		},
		tblRelayChanges: {
			Name: tblRelayChanges,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:   "id",
					Unique: true,
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "Username"},
							&memdb.StringFieldIndex{Field: "ID"},
						},
					},
				},
				"received": {
					Name:   "received",
					Unique: true,
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "Username"},
							&memdb.StringFieldIndex{Field: "ReceivedKey"},
						},
					},
				},
			},
		},
		tblRelayBlobs: {
			Name: tblRelayBlobs,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:   "id",
					Unique: true,
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "Username"},
							&memdb.StringFieldIndex{Field: "Kind"},
							&memdb.StringFieldIndex{Field: "Path"},
						},
					},
				},
			},
		},
	},
}

type relayClientRecord struct {
	Username     string
	ClientID     string
	RegisteredAt time.Time
}

type relayChangeRecord struct {
	Username string
	ID       string
	// ReceivedKey is ReceivedAt in zero-padded microseconds so that string
	// order matches time order.
	ReceivedKey string
	Entry       models.ChangelogEntry
}

type relayBlobRecord struct {
	Username  string
	Kind      string
	Path      string
	Data      []byte
	UpdatedAt time.Time
}

// MemoryRelayRepository is an in-memory [RelayRepository] used when the
// relay runs without a database DSN and in tests.
type MemoryRelayRepository struct {
	db *memdb.MemDB

	// last received stamp per user, only touched under a write txn
	mu   sync.Mutex
	last map[string]time.Time

	now    func() time.Time
	logger *logger.Logger
}

func NewMemoryRelayRepository(log *logger.Logger) (*MemoryRelayRepository, error) {
	db, err := memdb.NewMemDB(relaySchema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}

	return &MemoryRelayRepository{
		db:     db,
		last:   make(map[string]time.Time),
		now:    time.Now,
		logger: log,
	}, nil
}

func receivedKey(t time.Time) string {
	return fmt.Sprintf("%020d", t.UnixMicro())
}

func (m *MemoryRelayRepository) RegisterClient(_ context.Context, username, clientID string) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblRelayClients, "id", username, clientID)
	if err != nil {
		return fmt.Errorf("find client: %w", err)
	}
	if raw != nil {
		return nil
	}

	record := &relayClientRecord{Username: username, ClientID: clientID, RegisteredAt: m.now().UTC()}
	if err = txn.Insert(tblRelayClients, record); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	txn.Commit()
	return nil
}

func (m *MemoryRelayRepository) StoreChanges(_ context.Context, username string, entries []models.ChangelogEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	txn := m.db.Txn(true)
	defer txn.Abort()

	stamp := m.now().UTC().Truncate(time.Microsecond)
	if last, ok := m.last[username]; ok && !stamp.After(last) {
		stamp = last.Add(time.Microsecond)
	}

	stored := 0
	for _, e := range entries {
		raw, err := txn.First(tblRelayChanges, "id", username, e.ID)
		if err != nil {
			return 0, fmt.Errorf("find change: %w", err)
		}
		if raw != nil {
			continue
		}

		entry := e
		entry.Payload = bytes.Clone(e.Payload)
		entry.ReceivedAt = stamp
		entry.SyncStatus = ""

		record := &relayChangeRecord{
			Username:    username,
			ID:          e.ID,
			ReceivedKey: receivedKey(stamp),
			Entry:       entry,
		}
		if err = txn.Insert(tblRelayChanges, record); err != nil {
			return 0, fmt.Errorf("insert change: %w", err)
		}

		m.last[username] = stamp
		stamp = stamp.Add(time.Microsecond)
		stored++
	}

	txn.Commit()
	return stored, nil
}

func (m *MemoryRelayRepository) ListChanges(_ context.Context, username string, since *time.Time) ([]models.ChangelogEntry, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	lower := ""
	if since != nil {
		lower = receivedKey(*since)
	}

	it, err := txn.LowerBound(tblRelayChanges, "received", username, lower)
	if err != nil {
		return nil, fmt.Errorf("fetch changes: %w", err)
	}

	entries := make([]models.ChangelogEntry, 0)
	for raw := it.Next(); raw != nil; raw = it.Next() {
		record := raw.(*relayChangeRecord)
		if record.Username != username {
			break
		}
		if since != nil && !record.Entry.ReceivedAt.After(*since) {
			continue
		}

		entry := record.Entry
		entry.Payload = bytes.Clone(record.Entry.Payload)
		entries = append(entries, entry)
	}
	return entries, nil
}

func (m *MemoryRelayRepository) PutSnapshot(ctx context.Context, username string, data []byte) error {
	return m.putBlob(username, blobKindSnapshot, snapshotPath, data)
}

func (m *MemoryRelayRepository) GetSnapshot(_ context.Context, username string) (models.RelayBlob, error) {
	return m.getBlob(username, blobKindSnapshot, snapshotPath)
}

func (m *MemoryRelayRepository) PutAttachment(_ context.Context, username, path string, data []byte) error {
	return m.putBlob(username, blobKindAttachment, path, data)
}

func (m *MemoryRelayRepository) GetAttachment(_ context.Context, username, path string) (models.RelayBlob, error) {
	return m.getBlob(username, blobKindAttachment, path)
}

func (m *MemoryRelayRepository) putBlob(username, kind, path string, data []byte) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	record := &relayBlobRecord{
		Username:  username,
		Kind:      kind,
		Path:      path,
		Data:      bytes.Clone(data),
		UpdatedAt: m.now().UTC(),
	}
	if err := txn.Insert(tblRelayBlobs, record); err != nil {
		return fmt.Errorf("insert blob: %w", err)
	}
	txn.Commit()
	return nil
}

func (m *MemoryRelayRepository) getBlob(username, kind, path string) (models.RelayBlob, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblRelayBlobs, "id", username, kind, path)
	if err != nil {
		return models.RelayBlob{}, fmt.Errorf("find blob: %w", err)
	}
	if raw == nil {
		return models.RelayBlob{}, ErrBlobNotFound
	}

	record := raw.(*relayBlobRecord)
	return models.RelayBlob{
		Username:  record.Username,
		Path:      record.Path,
		Data:      bytes.Clone(record.Data),
		UpdatedAt: record.UpdatedAt,
	}, nil
}

func (m *MemoryRelayRepository) Close() error {
	return nil
}
