// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/models"
)

// FetchFullDB installs the relay snapshot in place of the local database.
//
// Pending local entries are pushed first. Entries that still could not be
// pushed are carried over: after the install they are re-appended and
// re-applied, so no local edit is lost. The snapshot's own changelog rows
// belong to the uploading device and are dropped.
func (e *syncEngine) FetchFullDB(ctx context.Context) (models.StatusInfo, error) {
	return e.runExclusive(ctx, "syncEngine.FetchFullDB", e.fetchFullDB)
}

// UploadFullDB replaces the relay snapshot with the local database.
func (e *syncEngine) UploadFullDB(ctx context.Context) (models.StatusInfo, error) {
	return e.runExclusive(ctx, "syncEngine.UploadFullDB", e.uploadFullDB)
}

func (e *syncEngine) runExclusive(ctx context.Context, op string, fn func(ctx context.Context, report *models.SyncReport) error) (models.StatusInfo, error) {
	if !e.running.CompareAndSwap(false, true) {
		return models.StatusInfo{}, ErrSyncInProgress
	}
	defer e.running.Store(false)

	if err := e.beginPass(); err != nil {
		status, _ := e.Status(ctx)
		return status, err
	}
	e.publishStatus(ctx)

	var report models.SyncReport
	err := fn(ctx, &report)
	e.finishPass(ctx, op, report, err)

	status, _ := e.Status(ctx)
	return status, err
}

func (e *syncEngine) fetchFullDB(ctx context.Context, report *models.SyncReport) error {
	if err := e.push(ctx, report); err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.fetchFullDB").Msg("push before snapshot install failed, carrying entries over")
	}

	snapshot, err := e.transport.GetFullSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("fetch snapshot failed: %w", err)
	}

	plain, err := e.cipher.Decrypt(ctx, snapshot.Data)
	if err != nil {
		return fmt.Errorf("fetch snapshot failed: decrypt: %w", err)
	}

	var (
		carried []models.ChangelogEntry
		seq     int64
	)
	err = e.db.View(ctx, func(q store.Querier) error {
		var viewErr error
		if carried, viewErr = e.changelog.ListUnsynced(ctx, q, 0); viewErr != nil {
			return viewErr
		}
		seq, viewErr = e.entities.CurrentSequence(ctx, q, e.deviceID)
		return viewErr
	})
	if err != nil {
		return storageError("read local state", err)
	}

	if err = e.installSnapshot(ctx, plain); err != nil {
		return err
	}

	err = e.db.WithTx(ctx, func(q store.Querier) error {
		if txErr := e.changelog.Clear(ctx, q); txErr != nil {
			return txErr
		}
		if txErr := e.entities.RaiseSequence(ctx, q, e.deviceID, seq); txErr != nil {
			return txErr
		}
		for _, entry := range carried {
			if txErr := e.changelog.AppendEntry(ctx, q, entry); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return storageError("reset changelog after install", err)
	}

	for _, entry := range carried {
		if _, applyErr := e.applyEntry(ctx, entry); applyErr != nil {
			e.logger.Warn().Err(applyErr).Str("entry_id", entry.ID).Msg("failed to re-apply carried entry")
		}
	}

	since := snapshot.RelayTime
	if since.IsZero() {
		since = e.now()
	}
	if err = e.syncInfo.SaveCursor(ctx, models.SyncCursor{Since: since.UTC()}); err != nil {
		return storageError("save cursor", err)
	}

	e.logger.Info().Int("carried", len(carried)).Time("cursor", since).Msg("snapshot installed")
	return nil
}

// installSnapshot writes plain to a temp file beside the database and
// swaps it in. The temp file is removed on every failure path.
func (e *syncEngine) installSnapshot(ctx context.Context, plain []byte) error {
	tmp, err := os.CreateTemp(e.db.Dir(), "snapshot-*.db")
	if err != nil {
		return storageError("create snapshot file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	_, err = tmp.Write(plain)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return storageError("write snapshot file", err)
	}

	if err = e.db.Replace(ctx, tmpName); err != nil {
		if errors.Is(err, store.ErrInvalidSnapshot) {
			return fmt.Errorf("fetch snapshot failed: %w", err)
		}
		return storageError("install snapshot", err)
	}
	return nil
}

func (e *syncEngine) uploadFullDB(ctx context.Context, report *models.SyncReport) error {
	// pull first so the image carries everything this device has seen
	passReport, err := e.pass(ctx, false)
	*report = passReport
	if err != nil {
		return err
	}

	tmpName := filepath.Join(e.db.Dir(), "upload-"+e.clientIDs.Generate()+".db")
	defer os.Remove(tmpName)

	if err = e.db.SnapshotTo(ctx, tmpName); err != nil {
		return storageError("snapshot database", err)
	}

	plain, err := os.ReadFile(tmpName)
	if err != nil {
		return storageError("read database snapshot", err)
	}

	sealed, err := e.cipher.Encrypt(ctx, plain)
	if err != nil {
		return fmt.Errorf("upload snapshot failed: encrypt: %w", err)
	}

	if err = e.transport.UploadFullSnapshot(ctx, sealed); err != nil {
		return fmt.Errorf("upload snapshot failed: %w", err)
	}

	e.logger.Info().Int("size", len(sealed)).Msg("snapshot uploaded")
	return nil
}
