// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/mock"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
)

func validEntry(id string) models.ChangelogEntry {
	return models.ChangelogEntry{
		ID:         id,
		DeviceID:   "device-a",
		Sequence:   1,
		EntityKind: models.EntityKindNote,
		EntityID:   "note-1",
		Operation:  models.OperationCreate,
		Payload:    []byte{0x01, 0x02},
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRelayService_UploadChanges(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	tests := []struct {
		name      string
		entries   []models.ChangelogEntry
		setupMock func(repo *mock.MockRelayRepository)
		want      int
		wantErr   error
	}{
		{
			name:    "stores valid batch",
			entries: []models.ChangelogEntry{validEntry("e1"), validEntry("e2")},
			setupMock: func(repo *mock.MockRelayRepository) {
				repo.EXPECT().StoreChanges(gomock.Any(), "alice", gomock.Len(2)).Return(1, nil)
			},
			want: 1,
		},
		{
			name: "rejects entry without payload",
			entries: func() []models.ChangelogEntry {
				e := validEntry("e1")
				e.Payload = nil
				return []models.ChangelogEntry{e}
			}(),
			setupMock: func(repo *mock.MockRelayRepository) {},
			wantErr:   ErrInvalidDataProvided,
		},
		{
			name:      "rejects empty batch",
			entries:   nil,
			setupMock: func(repo *mock.MockRelayRepository) {},
			wantErr:   ErrInvalidDataProvided,
		},
		{
			name:    "repository failure",
			entries: []models.ChangelogEntry{validEntry("e1")},
			setupMock: func(repo *mock.MockRelayRepository) {
				repo.EXPECT().StoreChanges(gomock.Any(), "alice", gomock.Any()).Return(0, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRelayRepository(ctrl)
			tt.setupMock(repo)

			svc := NewRelayService(repo, validators.NewSyncValidator(), logger.Nop())
			got, err := svc.UploadChanges(ctx, "alice", tt.entries)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelayService_RegisterClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRelayRepository(ctrl)
	svc := NewRelayService(repo, validators.NewSyncValidator(), logger.Nop())
	ctx := context.Background()

	repo.EXPECT().RegisterClient(gomock.Any(), "alice", "client-1").Return(nil)

	require.NoError(t, svc.RegisterClient(ctx, "alice", models.RegisterClientRequest{ClientID: "client-1"}))
	assert.ErrorIs(t, svc.RegisterClient(ctx, "alice", models.RegisterClientRequest{}), ErrInvalidDataProvided)
}

func TestRelayService_Blobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRelayRepository(ctrl)
	svc := NewRelayService(repo, validators.NewSyncValidator(), logger.Nop())
	ctx := context.Background()

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().ListChanges(gomock.Any(), "alice", &since).Return([]models.ChangelogEntry{validEntry("e1")}, nil)
	repo.EXPECT().PutSnapshot(gomock.Any(), "alice", []byte("image")).Return(nil)
	repo.EXPECT().PutAttachment(gomock.Any(), "alice", "a/b.png", []byte{}).Return(nil)
	repo.EXPECT().GetAttachment(gomock.Any(), "alice", "a/b.png").Return(models.RelayBlob{Data: []byte{}}, nil)

	entries, err := svc.ListChanges(ctx, "alice", &since)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, svc.PutSnapshot(ctx, "alice", []byte("image")))
	assert.ErrorIs(t, svc.PutSnapshot(ctx, "alice", nil), ErrInvalidDataProvided)

	require.NoError(t, svc.PutAttachment(ctx, "alice", "a/b.png", []byte{}))
	assert.ErrorIs(t, svc.PutAttachment(ctx, "alice", "../b.png", []byte("x")), ErrInvalidDataProvided)

	blob, err := svc.GetAttachment(ctx, "alice", "a/b.png")
	require.NoError(t, err)
	assert.Empty(t, blob.Data)

	_, err = svc.GetAttachment(ctx, "alice", "/abs")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
