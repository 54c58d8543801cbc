// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the relay protocol.
//
// [SyncTransport] hides HTTP behind typed operations and maps every failure
// onto the sentinels in errors.go, so callers branch with [errors.Is] and
// [errors.As] only: [ErrUnauthorized] for 401, [*RemoteError] (matching
// [ErrRemote]) for any other unexpected status, [ErrNetwork] when no
// response arrived and [ErrCancelled] when the caller gave up. The transport
// never retries.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_transport_mock.go -package=mock

// SyncTransport talks to the blind relay.
type SyncTransport interface {
	// SetServer points the transport at a relay base URL. A bare host gets
	// the http scheme.
	SetServer(server string) error

	// SetToken replaces the bearer token sent with every call.
	SetToken(token string)

	// RegisterClient announces clientID under the token's username.
	RegisterClient(ctx context.Context, clientID string) error

	// GetFullSnapshot downloads the encrypted database image together with
	// the relay clock at download time.
	GetFullSnapshot(ctx context.Context) (models.Snapshot, error)

	// UploadFullSnapshot replaces the encrypted database image.
	UploadFullSnapshot(ctx context.Context, data []byte) error

	// ListChangelogEntries returns entries received after since, or all
	// entries when since is nil.
	ListChangelogEntries(ctx context.Context, since *time.Time) ([]models.ChangelogEntry, error)

	// UploadChangelogEntries stores entries and returns how many were new.
	// Re-uploading an entry is harmless.
	UploadChangelogEntries(ctx context.Context, entries []models.ChangelogEntry) (int, error)

	// UploadAttachment stores an encrypted blob under path.
	UploadAttachment(ctx context.Context, path string, data []byte) error

	// DownloadAttachment fetches the encrypted blob stored under path.
	DownloadAttachment(ctx context.Context, path string) ([]byte, error)
}
