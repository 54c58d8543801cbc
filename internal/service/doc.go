// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the controllers that run behind the bridge on the
// client and the relay-side service used by the HTTP handlers.
//
// Client side:
//   - [SyncService] drives the sync state machine: setup, incremental
//     pull/push passes, full snapshot download and upload.
//   - [NotesService] mutates notes, tags and settings, writing each change
//     and its changelog entry in one transaction.
//   - [AttachmentService] stores attachments locally and on the relay.
//
// Relay side:
//   - [RelayService] validates and stores opaque per-user data.
//   - [TokenService] issues and verifies relay bearer tokens.
//
// Controllers report progress through a [Notifier].
package service
