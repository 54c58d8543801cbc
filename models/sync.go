// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the lifecycle state of the sync engine.
type SyncState string

const (
	SyncStateDisabled               SyncState = "disabled"
	SyncStateAwaitingAuthentication SyncState = "awaiting-authentication"
	SyncStateSettingUp              SyncState = "setting-up"
	SyncStateReady                  SyncState = "ready"
	SyncStateSyncing                SyncState = "syncing"
	SyncStateError                  SyncState = "error"
)

// SyncInfo is the persisted sync configuration of this device.
type SyncInfo struct {
	Enabled  bool   `json:"enabled"`
	Server   string `json:"server"`
	Username string `json:"username"`
	ClientID string `json:"client_id"`
	Token    string `json:"token,omitempty"`
}

// SyncCursor is the relay receive-time high-water mark of applied entries.
// A zero Since means "from the beginning".
type SyncCursor struct {
	Since time.Time `json:"since"`
}

// SetupRequest starts the sync setup flow.
type SetupRequest struct {
	Server   string `json:"server"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

// SyncReport summarises one sync pass.
type SyncReport struct {
	Pulled   int `json:"pulled"`
	Applied  int `json:"applied"`
	Rejected int `json:"rejected"`
	Pushed   int `json:"pushed"`
}

// StatusInfo is the externally visible state of the sync engine.
type StatusInfo struct {
	State      SyncState   `json:"state"`
	Server     string      `json:"server,omitempty"`
	Username   string      `json:"username,omitempty"`
	ClientID   string      `json:"client_id,omitempty"`
	Cursor     time.Time   `json:"cursor,omitzero"`
	LastSyncAt time.Time   `json:"last_sync_at,omitzero"`
	LastError  string      `json:"last_error,omitempty"`
	Pending    int64       `json:"pending"`
	Skipped    bool        `json:"skipped,omitempty"`
	Report     *SyncReport `json:"report,omitempty"`
}

// Snapshot is a full encrypted database image as stored on the relay.
// RelayTime is the relay clock at download time; zero when unknown.
type Snapshot struct {
	Data      []byte
	RelayTime time.Time
}

// RejectedEntry describes a pulled entry that could not be decrypted.
type RejectedEntry struct {
	ID       string `json:"id"`
	DeviceID string `json:"device_id"`
	Reason   string `json:"reason"`
}

// AuthStatus is published when the relay rejects or accepts the token.
type AuthStatus struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}
