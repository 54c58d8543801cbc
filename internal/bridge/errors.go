// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-sync/internal/adapter"
	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/workers"
)

var (
	// ErrUnknownAction is returned for actions outside the closed set or
	// without a registered handler.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInternal is returned for unclassified failures and recovered panics.
	ErrInternal = errors.New("internal error")
	// ErrCancelled is returned by calls whose context ended before the
	// response arrived.
	ErrCancelled = errors.New("call cancelled")
	// ErrClosed is returned once the connection is torn down.
	ErrClosed = errors.New("bridge closed")
	// ErrInvalidParams is returned when params do not decode into the
	// handler's type.
	ErrInvalidParams = errors.New("invalid params")
	// ErrHandlerExists is returned when an action is registered twice.
	ErrHandlerExists = errors.New("handler already registered")
)

// Error codes carried in ErrorPayload.
const (
	CodeCancelled       = "cancelled"
	CodeUnauthorized    = "unauthorized"
	CodeNetwork         = "network"
	CodeNotFound        = "not_found"
	CodeRemote          = "remote"
	CodeDecrypt         = "decrypt"
	CodeKeyUnavailable  = "key_unavailable"
	CodeSyncDisabled    = "sync_disabled"
	CodeSyncInProgress  = "sync_in_progress"
	CodeInvalidState    = "invalid_state"
	CodeInvalidArgument = "invalid_argument"
	CodeInvalidSnapshot = "invalid_snapshot"
	CodeChecksum        = "checksum_mismatch"
	CodeStorage         = "storage"
	CodeUnknownAction   = "unknown_action"
	CodeClosed          = "closed"
	CodeInternal        = "internal"
)

// errorCodes is checked in order: a relay 404 is also a remote error, and a
// cancelled relay call is also a network error.
var errorCodes = []struct {
	code    string
	matches []error
}{
	{CodeCancelled, []error{ErrCancelled, adapter.ErrCancelled, context.Canceled}},
	{CodeUnauthorized, []error{adapter.ErrUnauthorized}},
	{CodeNotFound, []error{service.ErrNotFound, adapter.ErrNotFound}},
	{CodeNetwork, []error{adapter.ErrNetwork, context.DeadlineExceeded}},
	{CodeRemote, []error{adapter.ErrRemote}},
	{CodeDecrypt, []error{crypto.ErrDecrypt}},
	{CodeKeyUnavailable, []error{crypto.ErrKeyUnavailable}},
	{CodeSyncDisabled, []error{service.ErrSyncDisabled}},
	{CodeSyncInProgress, []error{service.ErrSyncInProgress}},
	{CodeInvalidState, []error{service.ErrInvalidState}},
	{CodeInvalidArgument, []error{
		service.ErrInvalidDataProvided, ErrInvalidParams,
		workers.ErrUnknownJob, workers.ErrUnknownEvent,
	}},
	{CodeInvalidSnapshot, []error{store.ErrInvalidSnapshot}},
	{CodeChecksum, []error{service.ErrChecksumMismatch}},
	{CodeStorage, []error{service.ErrStorage}},
	{CodeUnknownAction, []error{ErrUnknownAction}},
	{CodeClosed, []error{ErrClosed}},
	{CodeInternal, []error{ErrInternal}},
}

// encodeError flattens err for the trip to the client.
func encodeError(err error) *ErrorPayload {
	if err == nil {
		return nil
	}
	return &ErrorPayload{Code: codeFromError(err), Message: err.Error()}
}

func codeFromError(err error) string {
	for _, c := range errorCodes {
		for _, target := range c.matches {
			if errors.Is(err, target) {
				return c.code
			}
		}
	}
	return CodeInternal
}

// CallError is an error rebuilt on the client side. It matches the
// sentinels of its code with errors.Is.
type CallError struct {
	Code    string
	Message string

	sentinels []error
}

func (e *CallError) Error() string {
	return e.Message
}

func (e *CallError) Unwrap() []error {
	return e.sentinels
}

// decodeError rebuilds an error from its payload. Unknown codes become
// internal errors.
func decodeError(p *ErrorPayload) error {
	if p == nil {
		return nil
	}
	for _, c := range errorCodes {
		if c.code == p.Code {
			return &CallError{Code: p.Code, Message: p.Message, sentinels: c.matches}
		}
	}
	return &CallError{Code: CodeInternal, Message: p.Message, sentinels: []error{ErrInternal}}
}
