// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/adapter"
	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/models"
)

func (e *syncEngine) Start(ctx context.Context) (models.StatusInfo, error) {
	return e.runPass(ctx, "syncEngine.Start", false)
}

func (e *syncEngine) Reconcile(ctx context.Context) (models.StatusInfo, error) {
	return e.runPass(ctx, "syncEngine.Reconcile", true)
}

// runPass runs pull then push. fromStart pulls the whole relay changelog
// instead of the tail after the cursor.
func (e *syncEngine) runPass(ctx context.Context, op string, fromStart bool) (models.StatusInfo, error) {
	if !e.running.CompareAndSwap(false, true) {
		status, err := e.Status(ctx)
		status.Skipped = true
		return status, err
	}
	defer e.running.Store(false)

	if err := e.beginPass(); err != nil {
		status, _ := e.Status(ctx)
		return status, err
	}
	e.publishStatus(ctx)

	report, err := e.pass(ctx, fromStart)
	e.finishPass(ctx, op, report, err)

	status, _ := e.Status(ctx)
	return status, err
}

// beginPass moves ready or error to syncing.
func (e *syncEngine) beginPass() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case models.SyncStateReady, models.SyncStateError:
		e.state = models.SyncStateSyncing
		return nil
	case models.SyncStateSyncing:
		return ErrSyncInProgress
	default:
		return fmt.Errorf("%w: state %s", ErrSyncDisabled, e.state)
	}
}

func (e *syncEngine) finishPass(ctx context.Context, op string, report models.SyncReport, err error) {
	e.mu.Lock()
	e.lastReport = &report
	if err == nil {
		e.lastSyncAt = e.now().UTC()
	}
	e.mu.Unlock()

	if err != nil {
		e.logger.Err(err).Str("func", op).Msg("sync pass failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			e.notifier.Notify(ctx, NotifyAuthStatusChanged, models.AuthStatus{Authenticated: false, Username: e.username()})
		}
		e.setState(models.SyncStateError, err)
		e.publishStatus(ctx)
		return
	}

	e.setState(models.SyncStateReady, nil)
	e.logger.Info().
		Str("func", op).
		Int("pulled", report.Pulled).
		Int("applied", report.Applied).
		Int("rejected", report.Rejected).
		Int("pushed", report.Pushed).
		Msg("sync pass completed")
	e.notifier.Notify(ctx, NotifySyncCompleted, report)
	e.publishStatus(ctx)
}

func (e *syncEngine) username() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.info.Username
}

func (e *syncEngine) pass(ctx context.Context, fromStart bool) (models.SyncReport, error) {
	var report models.SyncReport

	if err := e.pull(ctx, fromStart, &report); err != nil {
		return report, fmt.Errorf("pull failed: %w", err)
	}
	if err := e.push(ctx, &report); err != nil {
		return report, fmt.Errorf("push failed: %w", err)
	}
	return report, nil
}

func (e *syncEngine) pull(ctx context.Context, fromStart bool, report *models.SyncReport) error {
	cursor, err := e.syncInfo.GetCursor(ctx)
	if err != nil {
		return storageError("read cursor", err)
	}

	var since *time.Time
	if !fromStart && !cursor.Since.IsZero() {
		since = &cursor.Since
	}

	entries, err := e.transport.ListChangelogEntries(ctx, since)
	if err != nil {
		return err
	}
	report.Pulled = len(entries)
	if len(entries) == 0 {
		return nil
	}

	slices.SortStableFunc(entries, compareEntries)

	processed := make([]bool, len(entries))
	var applyErr error
	for i, entry := range entries {
		if err = ctx.Err(); err != nil {
			applyErr = err
			break
		}

		applied, entryErr := e.applyEntry(ctx, entry)
		var rejected *rejectedEntryError
		switch {
		case errors.As(entryErr, &rejected):
			report.Rejected++
			e.logger.Warn().Err(entryErr).Str("entry_id", entry.ID).Msg("skipping unreadable changelog entry")
			e.notifier.Notify(ctx, NotifySyncEntryRejected, models.RejectedEntry{
				ID:       entry.ID,
				DeviceID: entry.DeviceID,
				Reason:   rejected.Error(),
			})
		case entryErr != nil:
			applyErr = entryErr
		case applied:
			report.Applied++
		}
		if applyErr != nil {
			break
		}
		processed[i] = true
	}

	if next, ok := safeCursor(entries, processed); ok && next.After(cursor.Since) {
		if err = e.syncInfo.SaveCursor(ctx, models.SyncCursor{Since: next}); err != nil {
			return errors.Join(applyErr, storageError("save cursor", err))
		}
	}

	return applyErr
}

// rejectedEntryError marks an entry that can never be applied on this
// device. The pass skips it and moves on.
type rejectedEntryError struct {
	err error
}

func (e *rejectedEntryError) Error() string { return e.err.Error() }
func (e *rejectedEntryError) Unwrap() error { return e.err }

// applyEntry decrypts entry and applies it with last-writer-wins. It
// reports whether the local entity changed.
func (e *syncEngine) applyEntry(ctx context.Context, entry models.ChangelogEntry) (bool, error) {
	if !entry.EntityKind.Valid() || !entry.Operation.Valid() {
		return false, &rejectedEntryError{err: fmt.Errorf("entry %s: unknown kind or operation", entry.ID)}
	}

	plain, err := e.cipher.Decrypt(ctx, entry.Payload)
	if err != nil {
		if errors.Is(err, crypto.ErrKeyUnavailable) || ctx.Err() != nil {
			return false, err
		}
		return false, &rejectedEntryError{err: fmt.Errorf("entry %s: %w", entry.ID, err)}
	}

	var payload models.ChangePayload
	if err = json.Unmarshal(plain, &payload); err != nil {
		return false, &rejectedEntryError{err: fmt.Errorf("entry %s: decode payload: %w", entry.ID, err)}
	}

	entity := models.Entity{
		Kind:    entry.EntityKind,
		ID:      entry.EntityID,
		Body:    payload.Body,
		Deleted: entry.Operation == models.OperationDelete,
		Clock:   entry.Clock(),
	}
	if entity.Deleted {
		entity.Body = nil
	}

	var applied bool
	err = e.db.WithTx(ctx, func(q store.Querier) error {
		var txErr error
		if applied, txErr = e.entities.Apply(ctx, q, entity); txErr != nil {
			return txErr
		}
		if entry.DeviceID == e.deviceID {
			// our own entry coming back, e.g. after a reinstall
			return e.entities.RaiseSequence(ctx, q, e.deviceID, entry.Sequence)
		}
		return nil
	})
	if err != nil {
		return false, storageError("apply entry", err)
	}
	return applied, nil
}

func (e *syncEngine) push(ctx context.Context, report *models.SyncReport) error {
	for {
		var pending []models.ChangelogEntry
		err := e.db.View(ctx, func(q store.Querier) error {
			var listErr error
			pending, listErr = e.changelog.ListUnsynced(ctx, q, e.batchSize)
			return listErr
		})
		if err != nil {
			return storageError("list pending entries", err)
		}
		if len(pending) == 0 {
			return nil
		}

		if _, err = e.transport.UploadChangelogEntries(ctx, pending); err != nil {
			return err
		}

		ids := make([]string, len(pending))
		for i, entry := range pending {
			ids[i] = entry.ID
		}
		err = e.db.WithTx(ctx, func(q store.Querier) error {
			return e.changelog.MarkSynced(ctx, q, ids)
		})
		if err != nil {
			return storageError("mark entries synced", err)
		}

		report.Pushed += len(pending)
		if uint64(len(pending)) < e.batchSize {
			return nil
		}
	}
}

func compareEntries(a, b models.ChangelogEntry) int {
	switch {
	case models.EntryLess(a, b):
		return -1
	case models.EntryLess(b, a):
		return 1
	}
	return 0
}

// safeCursor returns the highest ReceivedAt R such that every entry with
// ReceivedAt <= R was processed. ok is false when no entry qualifies.
func safeCursor(entries []models.ChangelogEntry, processed []bool) (time.Time, bool) {
	var firstGap time.Time
	hasGap := false
	for i, entry := range entries {
		if !processed[i] && (!hasGap || entry.ReceivedAt.Before(firstGap)) {
			firstGap = entry.ReceivedAt
			hasGap = true
		}
	}

	var best time.Time
	found := false
	for i, entry := range entries {
		if !processed[i] || entry.ReceivedAt.IsZero() {
			continue
		}
		if hasGap && !entry.ReceivedAt.Before(firstGap) {
			continue
		}
		if !found || entry.ReceivedAt.After(best) {
			best = entry.ReceivedAt
			found = true
		}
	}
	return best, found
}
