// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-sync/internal/store"
)

var (
	// ErrInvalidDataProvided is returned when input fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrSyncDisabled is returned by sync operations before setup completed.
	ErrSyncDisabled = errors.New("sync is not enabled")
	// ErrSyncInProgress is returned when an exclusive operation finds a
	// sync pass running.
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrInvalidState is returned when the engine state does not allow the
	// requested transition.
	ErrInvalidState = errors.New("operation not allowed in current sync state")

	// ErrNotFound is returned when a note, tag or attachment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorage matches every [*StorageError].
	ErrStorage = errors.New("local storage failure")
	// ErrChecksumMismatch is returned when fetched attachment bytes do not
	// hash to the recorded SHA-256.
	ErrChecksumMismatch = errors.New("attachment checksum mismatch")

	// ErrTokenIsExpired is returned for expired relay tokens.
	ErrTokenIsExpired = errors.New("token is expired")
	// ErrInvalidToken is returned for tokens that fail verification.
	ErrInvalidToken = errors.New("invalid token")
)

// StorageError wraps a local database or file failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

func errorsIsNotFound(err error) bool {
	return errors.Is(err, store.ErrEntityNotFound) || errors.Is(err, store.ErrAttachmentNotFound)
}
