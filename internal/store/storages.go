// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

// ClientStorages groups the client-side storage layer.
type ClientStorages struct {
	DB          *LocalDB
	Changelog   ChangelogRepository
	Entities    EntityRepository
	SyncInfo    *BoltSyncInfoStore
	Attachments *FileAttachmentStore
}

// NewClientStorages opens the SQLite database (running migrations), the
// bbolt sync info file sealed with cipher, and the attachment directory.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, cipher crypto.Cipher, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	kv, err := NewBoltSyncInfoStore(cfg.KVPath, cipher, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	files, err := NewFileAttachmentStore(cfg.AttachmentsDir, log)
	if err != nil {
		db.Close()
		kv.Close()
		return nil, err
	}

	return &ClientStorages{
		DB:          db,
		Changelog:   NewChangelogRepository(log),
		Entities:    NewEntityRepository(log),
		SyncInfo:    kv,
		Attachments: files,
	}, nil
}

// Close closes the database and the key-value file.
func (s *ClientStorages) Close() error {
	return errors.Join(s.DB.Close(), s.SyncInfo.Close())
}

// NewRelayStorage returns the PostgreSQL repository when dsn is set and the
// in-memory one otherwise.
func NewRelayStorage(ctx context.Context, dsn string, log *logger.Logger) (RelayRepository, error) {
	if dsn == "" {
		log.Warn().Msg("no database DSN configured, relay data is kept in memory")
		return NewMemoryRelayRepository(log)
	}

	db, err := NewConnectPostgres(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewRelayRepository(db, log), nil
}
