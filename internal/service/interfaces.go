// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-sync/models"
)

// Notification names published by the client controllers.
const (
	NotifySyncStatusChanged = "Sync/statusChanged"
	NotifySyncCompleted     = "Sync/completed"
	NotifySyncEntryRejected = "Sync/entryRejected"
	NotifyAuthStatusChanged = "Auth/statusChanged"
	NotifyNoteCreated       = "Notes/created"
	NotifyNoteUpdated       = "Notes/updated"
	NotifyNoteDeleted       = "Notes/deleted"
)

// Notifier delivers controller events to foreground listeners. Delivery
// is best effort and must not block the caller for long.
type Notifier interface {
	Notify(ctx context.Context, name string, payload any)
}

// SyncService is the sync engine of one device.
type SyncService interface {
	// Load restores the engine state from the persisted sync info. It is
	// called once at startup, after the key ring is unlocked.
	Load(ctx context.Context) (models.StatusInfo, error)

	// Init starts setup against req.Server for req.Username. Without a
	// token (in req or stored) the engine waits in awaiting-authentication
	// and Init returns the status without error. With a token the client
	// registers with the relay and the engine becomes ready.
	Init(ctx context.Context, req models.SetupRequest) (models.StatusInfo, error)

	// Authenticate completes a setup that was waiting for a token.
	Authenticate(ctx context.Context, token string) (models.StatusInfo, error)

	// Start runs one incremental pass: pull since the cursor, then push
	// pending entries. A call made while another pass runs returns the
	// current status with Skipped set.
	Start(ctx context.Context) (models.StatusInfo, error)

	// Reconcile runs a pass that pulls the whole relay changelog. The
	// cursor still only moves forward.
	Reconcile(ctx context.Context) (models.StatusInfo, error)

	// FetchFullDB replaces the local database with the relay snapshot.
	FetchFullDB(ctx context.Context) (models.StatusInfo, error)

	// UploadFullDB pushes pending entries and uploads a snapshot of the
	// local database.
	UploadFullDB(ctx context.Context) (models.StatusInfo, error)

	// Status reports the current state without side effects.
	Status(ctx context.Context) (models.StatusInfo, error)

	// Reset forgets sync info and the cursor. Local data stays.
	Reset(ctx context.Context) (models.StatusInfo, error)

	// Enabled reports whether setup completed.
	Enabled() bool
}

// NotesService mutates and reads notes, tags and settings. Every mutation
// writes the entity and its encrypted changelog entry in one transaction.
type NotesService interface {
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, note models.Note) (models.Note, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	PutTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	PutSetting(ctx context.Context, setting models.Setting) error
}

// AttachmentService stores attachments locally and mirrors them to the
// relay.
type AttachmentService interface {
	// Upload writes data to the local attachment store, records the
	// attachment metadata as a change and uploads the encrypted blob when
	// sync is enabled.
	Upload(ctx context.Context, path, mimeType string, data []byte) (models.AttachmentMeta, error)

	// GetData returns the local file when present. Otherwise it fetches and
	// decrypts the blob from the relay and keeps a local copy.
	GetData(ctx context.Context, path string) ([]byte, error)
}

// RelayService is the relay-side store of opaque per-user data. It performs
// no merge logic.
type RelayService interface {
	RegisterClient(ctx context.Context, username string, req models.RegisterClientRequest) error
	// UploadChanges validates and stores entries, returning how many were
	// new.
	UploadChanges(ctx context.Context, username string, entries []models.ChangelogEntry) (int, error)
	ListChanges(ctx context.Context, username string, since *time.Time) ([]models.ChangelogEntry, error)
	PutSnapshot(ctx context.Context, username string, data []byte) error
	GetSnapshot(ctx context.Context, username string) (models.RelayBlob, error)
	PutAttachment(ctx context.Context, username, path string, data []byte) error
	GetAttachment(ctx context.Context, username, path string) (models.RelayBlob, error)
}

// TokenService issues and verifies relay bearer tokens.
type TokenService interface {
	// IssueToken signs a token whose subject is username.
	IssueToken(username string) (models.Token, error)

	// ParseToken verifies signature, issuer and expiry.
	ParseToken(ctx context.Context, token string) (models.Token, error)
}
