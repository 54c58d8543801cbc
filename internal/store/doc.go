// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds every persistence concern of the client and the
// relay.
//
// Client side: [LocalDB] is the SQLite database with the entity and
// changelog tables; repositories take a [Querier] so their writes join the
// caller's transaction. [BoltSyncInfoStore] keeps sync info and the cursor
// in a bbolt file, sealing secrets with the key ring. [FileAttachmentStore]
// keeps plaintext attachment files.
//
// Relay side: [RelayRepository] stores opaque blobs per username, backed by
// PostgreSQL or by an in-memory go-memdb database.
package store
