// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors. Match with [errors.Is].
var (
	// ErrEntityNotFound is returned when no entity row matches kind and id.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrBlobNotFound is returned by relay repositories for a missing
	// snapshot or attachment.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrAttachmentNotFound is returned when no local attachment file exists.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrInvalidAttachmentPath is returned for absolute paths and paths
	// escaping the attachment directory.
	ErrInvalidAttachmentPath = errors.New("invalid attachment path")

	// ErrInvalidSnapshot is returned when a downloaded database image is not
	// a usable SQLite database.
	ErrInvalidSnapshot = errors.New("invalid database snapshot")

	// ErrSyncInfoCorrupted is returned when the sealed sync info cannot be
	// opened or decoded.
	ErrSyncInfoCorrupted = errors.New("sync info corrupted")
)

// Low-level database errors, wrapped by repository methods.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
