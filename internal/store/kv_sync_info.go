// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

var bucketSync = []byte("sync")

var (
	keySyncInfo = []byte("sync_info")
	keyCursor   = []byte("cursor")
	keyDeviceID = []byte("device_id")
)

// BoltSyncInfoStore keeps sync settings in a bbolt file next to the
// database. The sync info record carries the relay token and is sealed
// with the cipher; the cursor and device id are stored as is.
type BoltSyncInfoStore struct {
	db     *bbolt.DB
	cipher crypto.Cipher
	logger *logger.Logger
}

// NewBoltSyncInfoStore opens the key-value file at path.
func NewBoltSyncInfoStore(path string, cipher crypto.Cipher, log *logger.Logger) (*BoltSyncInfoStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create kv directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, bucketErr := tx.CreateBucketIfNotExists(bucketSync)
		return bucketErr
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return &BoltSyncInfoStore{db: db, cipher: cipher, logger: log}, nil
}

// Close closes the bbolt file.
func (s *BoltSyncInfoStore) Close() error {
	return s.db.Close()
}

// GetSyncInfo returns the stored sync info. The boolean is false when sync
// was never configured.
func (s *BoltSyncInfoStore) GetSyncInfo(ctx context.Context) (models.SyncInfo, bool, error) {
	sealed, err := s.get(keySyncInfo)
	if err != nil || sealed == nil {
		return models.SyncInfo{}, false, err
	}

	plain, err := s.cipher.Decrypt(ctx, sealed)
	if err != nil {
		if errors.Is(err, crypto.ErrKeyUnavailable) {
			return models.SyncInfo{}, false, err
		}
		s.logger.Err(err).Str("func", "BoltSyncInfoStore.GetSyncInfo").Msg("failed to open sync info")
		return models.SyncInfo{}, false, fmt.Errorf("%w: %w", ErrSyncInfoCorrupted, err)
	}

	var info models.SyncInfo
	if err = json.Unmarshal(plain, &info); err != nil {
		return models.SyncInfo{}, false, fmt.Errorf("%w: %w", ErrSyncInfoCorrupted, err)
	}
	return info, true, nil
}

func (s *BoltSyncInfoStore) SaveSyncInfo(ctx context.Context, info models.SyncInfo) error {
	plain, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode sync info: %w", err)
	}

	sealed, err := s.cipher.Encrypt(ctx, plain)
	if err != nil {
		return fmt.Errorf("failed to seal sync info: %w", err)
	}

	return s.put(keySyncInfo, sealed)
}

// GetCursor returns the zero cursor when none was saved.
func (s *BoltSyncInfoStore) GetCursor(_ context.Context) (models.SyncCursor, error) {
	raw, err := s.get(keyCursor)
	if err != nil || raw == nil {
		return models.SyncCursor{}, err
	}

	since, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return models.SyncCursor{}, fmt.Errorf("%w: cursor: %w", ErrSyncInfoCorrupted, err)
	}
	return models.SyncCursor{Since: since}, nil
}

func (s *BoltSyncInfoStore) SaveCursor(_ context.Context, cursor models.SyncCursor) error {
	if cursor.Since.IsZero() {
		return s.delete(keyCursor)
	}
	return s.put(keyCursor, []byte(cursor.Since.UTC().Format(time.RFC3339Nano)))
}

// GetDeviceID returns "" when no device id was saved.
func (s *BoltSyncInfoStore) GetDeviceID(_ context.Context) (string, error) {
	raw, err := s.get(keyDeviceID)
	return string(raw), err
}

func (s *BoltSyncInfoStore) SaveDeviceID(_ context.Context, deviceID string) error {
	return s.put(keyDeviceID, []byte(deviceID))
}

// Clear implements [SyncInfoStore].
func (s *BoltSyncInfoStore) Clear(_ context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSync)
		if err := bucket.Delete(keySyncInfo); err != nil {
			return fmt.Errorf("failed to delete sync info: %w", err)
		}
		if err := bucket.Delete(keyCursor); err != nil {
			return fmt.Errorf("failed to delete cursor: %w", err)
		}
		return nil
	})
}

func (s *BoltSyncInfoStore) get(key []byte) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		// values are only valid inside the transaction
		if v := tx.Bucket(bucketSync).Get(key); v != nil {
			value = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *BoltSyncInfoStore) put(key, value []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSync).Put(key, value)
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *BoltSyncInfoStore) delete(key []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSync).Delete(key)
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
