// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEntryID    = errors.New("invalid changelog entry id")
	ErrInvalidDeviceID   = errors.New("invalid device id")
	ErrInvalidSequence   = errors.New("invalid sequence")
	ErrInvalidEntityKind = errors.New("invalid entity kind")
	ErrInvalidEntityID   = errors.New("invalid entity id")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrEmptyPayload      = errors.New("payload is required")
	ErrInvalidCreatedAt  = errors.New("invalid created at")
	ErrEmptyEntries      = errors.New("entries list cannot be empty")
	ErrTooManyEntries    = errors.New("too many entries in one batch")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidServer     = errors.New("invalid server address")
	ErrInvalidUsername   = errors.New("invalid username")
	ErrInvalidPath       = errors.New("invalid attachment path")
	ErrEmptyTitle        = errors.New("note title and content cannot both be empty")
	ErrInvalidNoteID     = errors.New("invalid note id")
)
