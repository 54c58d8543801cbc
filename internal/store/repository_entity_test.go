// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-sync/models"
)

func TestEntityRepository_ApplyLastWriterWins(t *testing.T) {
	ctx := context.Background()
	db := newTestLocalDB(t)
	repo := NewEntityRepository(db.logger)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		entity      models.Entity
		wantApplied bool
		wantBody    string
	}{
		{
			name:        "first revision is stored",
			entity:      testEntity("n1", `{"v":1}`, base, "dev-b", 1),
			wantApplied: true,
			wantBody:    `{"v":1}`,
		},
		{
			name:        "older clock is ignored",
			entity:      testEntity("n1", `{"v":0}`, base.Add(-time.Second), "dev-z", 9),
			wantApplied: false,
			wantBody:    `{"v":1}`,
		},
		{
			name:        "same clock is ignored",
			entity:      testEntity("n1", `{"v":"dup"}`, base, "dev-b", 1),
			wantApplied: false,
			wantBody:    `{"v":1}`,
		},
		{
			name:        "equal time breaks tie on device id",
			entity:      testEntity("n1", `{"v":2}`, base, "dev-c", 1),
			wantApplied: true,
			wantBody:    `{"v":2}`,
		},
		{
			name:        "lower device id with equal time loses",
			entity:      testEntity("n1", `{"v":"a"}`, base, "dev-a", 50),
			wantApplied: false,
			wantBody:    `{"v":2}`,
		},
		{
			name:        "newer clock wins",
			entity:      testEntity("n1", `{"v":3}`, base.Add(time.Nanosecond), "dev-a", 1),
			wantApplied: true,
			wantBody:    `{"v":3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var applied bool
			require.NoError(t, db.WithTx(ctx, func(q Querier) error {
				var err error
				applied, err = repo.Apply(ctx, q, tt.entity)
				return err
			}))
			assert.Equal(t, tt.wantApplied, applied)

			require.NoError(t, db.View(ctx, func(q Querier) error {
				got, err := repo.Get(ctx, q, models.EntityKindNote, "n1")
				if err != nil {
					return err
				}
				assert.JSONEq(t, tt.wantBody, string(got.Body))
				return nil
			}))
		})
	}
}

func TestEntityRepository_ListSkipsTombstones(t *testing.T) {
	ctx := context.Background()
	db := newTestLocalDB(t)
	repo := NewEntityRepository(db.logger)
	now := time.Now().UTC()

	require.NoError(t, db.WithTx(ctx, func(q Querier) error {
		for _, e := range []models.Entity{
			testEntity("b", `{}`, now, "dev", 1),
			testEntity("a", `{}`, now, "dev", 2),
			{Kind: models.EntityKindNote, ID: "gone", Deleted: true, Clock: models.Clock{At: now, DeviceID: "dev", Sequence: 3}},
			{Kind: models.EntityKindTag, ID: "t1", Body: []byte(`{}`), Clock: models.Clock{At: now, DeviceID: "dev", Sequence: 4}},
		} {
			if _, err := repo.Apply(ctx, q, e); err != nil {
				return err
			}
		}
		return nil
	}))

	var notes []models.Entity
	require.NoError(t, db.View(ctx, func(q Querier) error {
		var err error
		notes, err = repo.List(ctx, q, models.EntityKindNote)
		return err
	}))
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].ID)
	assert.Equal(t, "b", notes[1].ID)
}

func TestEntityRepository_Sequences(t *testing.T) {
	ctx := context.Background()
	db := newTestLocalDB(t)
	repo := NewEntityRepository(db.logger)

	require.NoError(t, db.WithTx(ctx, func(q Querier) error {
		cur, err := repo.CurrentSequence(ctx, q, "dev")
		require.NoError(t, err)
		assert.Equal(t, int64(0), cur)

		for want := int64(1); want <= 3; want++ {
			got, nextErr := repo.NextSequence(ctx, q, "dev")
			require.NoError(t, nextErr)
			assert.Equal(t, want, got)
		}

		require.NoError(t, repo.RaiseSequence(ctx, q, "dev", 2))
		cur, err = repo.CurrentSequence(ctx, q, "dev")
		require.NoError(t, err)
		assert.Equal(t, int64(3), cur, "raise never lowers")

		require.NoError(t, repo.RaiseSequence(ctx, q, "dev", 10))
		got, err := repo.NextSequence(ctx, q, "dev")
		require.NoError(t, err)
		assert.Equal(t, int64(11), got)
		return nil
	}))
}
