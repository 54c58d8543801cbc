// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RelayClient is a device registered under a username on the relay.
type RelayClient struct {
	Username     string    `json:"username"`
	ClientID     string    `json:"client_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// RelayBlob is an opaque ciphertext stored by the relay (snapshot or
// attachment). Path is empty for snapshots.
type RelayBlob struct {
	Username  string
	Path      string
	Data      []byte
	UpdatedAt time.Time
}
