// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// EntityKind names the type of a replicated entity.
type EntityKind string

const (
	EntityKindNote       EntityKind = "note"
	EntityKindTag        EntityKind = "tag"
	EntityKindAttachment EntityKind = "attachment"
	EntityKindSetting    EntityKind = "setting"
)

// Valid reports whether k is one of the known entity kinds.
func (k EntityKind) Valid() bool {
	switch k {
	case EntityKindNote, EntityKindTag, EntityKindAttachment, EntityKindSetting:
		return true
	}
	return false
}

// Operation is the mutation recorded by a changelog entry.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Valid reports whether o is one of the known operations.
func (o Operation) Valid() bool {
	switch o {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// SyncStatus is the local-only replication flag of a changelog entry.
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSynced  SyncStatus = "synced"
)

// ChangelogEntry is one immutable record of a local mutation.
//
// Payload is always ciphertext. ReceivedAt is stamped by the relay and stays
// zero until the entry comes back from a pull. SyncStatus never leaves the
// device.
type ChangelogEntry struct {
	ID         string     `json:"id"`
	DeviceID   string     `json:"device_id"`
	Sequence   int64      `json:"sequence"`
	EntityKind EntityKind `json:"entity_kind"`
	EntityID   string     `json:"entity_id"`
	Operation  Operation  `json:"operation"`
	Payload    []byte     `json:"payload"`
	CreatedAt  time.Time  `json:"created_at"`
	ReceivedAt time.Time  `json:"received_at,omitzero"`
	SyncStatus SyncStatus `json:"-"`
}

// Clock returns the merge clock of the entry.
func (e ChangelogEntry) Clock() Clock {
	return Clock{At: e.CreatedAt, DeviceID: e.DeviceID, Sequence: e.Sequence}
}

// EntryLess orders entries by (CreatedAt, DeviceID, Sequence, ID). It is the
// order in which pulled entries are applied.
func EntryLess(a, b ChangelogEntry) bool {
	if c := a.Clock().Compare(b.Clock()); c != 0 {
		return c < 0
	}
	return a.ID < b.ID
}

// Clock is the last-writer-wins timestamp of an entity revision.
type Clock struct {
	At       time.Time `json:"at"`
	DeviceID string    `json:"device_id"`
	Sequence int64     `json:"sequence"`
}

// Compare returns -1, 0 or +1 depending on whether c happened before, at
// the same point as, or after other.
func (c Clock) Compare(other Clock) int {
	if c.At.Before(other.At) {
		return -1
	}
	if c.At.After(other.At) {
		return 1
	}
	if d := strings.Compare(c.DeviceID, other.DeviceID); d != 0 {
		return d
	}
	switch {
	case c.Sequence < other.Sequence:
		return -1
	case c.Sequence > other.Sequence:
		return 1
	}
	return 0
}

// IsZero reports whether the clock was never set.
func (c Clock) IsZero() bool {
	return c.At.IsZero() && c.DeviceID == "" && c.Sequence == 0
}
