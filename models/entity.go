// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Entity is the local row representation of any replicated object.
// Body holds the plaintext JSON of a [Note], [Tag], [AttachmentMeta] or
// [Setting].
type Entity struct {
	Kind    EntityKind      `json:"kind"`
	ID      string          `json:"id"`
	Body    json.RawMessage `json:"body,omitempty"`
	Deleted bool            `json:"deleted"`
	Clock   Clock           `json:"clock"`
}

// Note is a user note.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags,omitempty"`
	Attachments []string  `json:"attachments,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Tag is a user-defined label.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AttachmentMeta describes an attachment blob addressed by Path.
type AttachmentMeta struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type,omitempty"`
	SHA256   string `json:"sha256"`
}

// Setting is a replicated key/value preference.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ChangePayload is the plaintext that gets encrypted into
// [ChangelogEntry.Payload]. A delete carries no body.
type ChangePayload struct {
	Body json.RawMessage `json:"body,omitempty"`
}
