// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Headers shared by the relay and its clients.
const (
	// RelayTimeHeader carries the relay clock on snapshot downloads.
	RelayTimeHeader = "X-Relay-Time"
	// ContentHashHeader carries the hex SHA-256 of an uploaded body before
	// transport compression.
	ContentHashHeader = "X-Content-SHA256"
)

// RegisterClientRequest is the body of the client registration call.
type RegisterClientRequest struct {
	ClientID string `json:"client_id"`
}

// UploadChangesResponse is returned by the relay after storing changes.
// Stored counts only entries that were not already present.
type UploadChangesResponse struct {
	Stored int `json:"stored"`
}

// ErrorResponse is the JSON error body written by the relay.
type ErrorResponse struct {
	Error string `json:"error"`
}
