// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

// sqliteBuilder builds client queries with "?" placeholders.
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// pgBuilder builds relay queries with "$n" placeholders.
var pgBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var changelogColumns = []string{
	"id",
	"device_id",
	"sequence",
	"entity_kind",
	"entity_id",
	"operation",
	"payload",
	"created_at",
	"sync_status",
}

var entityColumns = []string{
	"kind",
	"id",
	"body",
	"deleted",
	"clock_at",
	"clock_device",
	"clock_seq",
}

const (
	// applyEntity upserts a row only when the incoming clock is strictly
	// greater than the stored one.
	applyEntity = `
		INSERT INTO entities (kind, id, body, deleted, clock_at, clock_device, clock_seq)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (kind, id) DO UPDATE SET
			body         = excluded.body,
			deleted      = excluded.deleted,
			clock_at     = excluded.clock_at,
			clock_device = excluded.clock_device,
			clock_seq    = excluded.clock_seq
		WHERE (excluded.clock_at, excluded.clock_device, excluded.clock_seq)
			> (entities.clock_at, entities.clock_device, entities.clock_seq);`

	nextSequence = `
		INSERT INTO device_sequences (device_id, seq) VALUES (?, 1)
		ON CONFLICT (device_id) DO UPDATE SET seq = device_sequences.seq + 1
		RETURNING seq;`

	raiseSequence = `
		INSERT INTO device_sequences (device_id, seq) VALUES (?, ?)
		ON CONFLICT (device_id) DO UPDATE SET seq = MAX(device_sequences.seq, excluded.seq);`

	insertRelayChange = `
		INSERT INTO relay_changes (
			username,
			id,
			device_id,
			sequence,
			entity_kind,
			entity_id,
			operation,
			payload,
			created_at,
			received_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (username, id) DO NOTHING;`

	maxRelayReceivedAt = `
		SELECT MAX(received_at) FROM relay_changes WHERE username = $1;`

	registerRelayClient = `
		INSERT INTO relay_clients (username, client_id) VALUES ($1, $2)
		ON CONFLICT (username, client_id) DO NOTHING;`

	putRelayBlob = `
		INSERT INTO relay_blobs (username, kind, path, data, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username, kind, path) DO UPDATE SET
			data       = excluded.data,
			updated_at = excluded.updated_at;`

	getRelayBlob = `
		SELECT data, updated_at FROM relay_blobs
		WHERE username = $1 AND kind = $2 AND path = $3;`
)

const (
	blobKindSnapshot   = "snapshot"
	blobKindAttachment = "attachment"

	// snapshotPath is the single path used for the per-user snapshot blob.
	snapshotPath = "/"
)
