// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-sync/internal/adapter"
	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/mock"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/models"
)

func TestSyncEngine_TwoDevicesConverge(t *testing.T) {
	ctx := context.Background()
	relay := newTestRelay(t)
	a := newTestDevice(t, "device-a", newRelayTransport(t, relay, "alice"))
	b := newTestDevice(t, "device-b", newRelayTransport(t, relay, "alice"))
	a.enable(t)
	b.enable(t)

	note, err := a.services.Notes.Create(ctx, models.Note{Title: "groceries", Content: "milk"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, a.pending(t))

	status := a.sync(t)
	require.NotNil(t, status.Report)
	assert.Equal(t, 1, status.Report.Pushed)
	assert.EqualValues(t, 0, status.Pending)

	status = b.sync(t)
	assert.Equal(t, 1, status.Report.Pulled)
	assert.Equal(t, 1, status.Report.Applied)
	assert.False(t, status.Cursor.IsZero())
	assert.Equal(t, map[string]string{note.ID: "groceries"}, b.noteTitles(t))

	note.Title = "groceries and more"
	_, err = b.services.Notes.Update(ctx, note)
	require.NoError(t, err)
	b.sync(t)

	status = a.sync(t)
	assert.Equal(t, 1, status.Report.Applied)
	assert.Equal(t, map[string]string{note.ID: "groceries and more"}, a.noteTitles(t))

	require.NoError(t, a.services.Notes.Delete(ctx, note.ID))
	a.sync(t)
	b.sync(t)
	assert.Empty(t, b.noteTitles(t))

	assert.Positive(t, a.notifier.count(NotifySyncCompleted))
	assert.Positive(t, a.notifier.count(NotifySyncStatusChanged))
}

func TestSyncEngine_SetupUnauthorizedDisablesSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockSyncTransport(ctrl)

	gomock.InOrder(
		transport.EXPECT().SetServer("http://relay.test").Return(nil),
		transport.EXPECT().SetToken("stale"),
		transport.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).Return(adapter.ErrUnauthorized),
		transport.EXPECT().SetToken(""),
	)

	d := newTestDevice(t, "device-a", transport)
	ctx := context.Background()

	status, err := d.services.Sync.Init(ctx, models.SetupRequest{
		Server:   "http://relay.test",
		Username: "alice",
		Token:    "stale",
	})
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, models.SyncStateDisabled, status.State)
	assert.NotEmpty(t, status.LastError)
	assert.False(t, d.services.Sync.Enabled())

	info, ok, err := d.storages.SyncInfo.GetSyncInfo(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, info.Enabled)
	assert.Empty(t, info.Token)
	assert.Equal(t, 1, d.notifier.count(NotifyAuthStatusChanged))
	assert.Equal(t, models.AuthStatus{Authenticated: false, Username: "alice"}, d.notifier.lastPayload(NotifyAuthStatusChanged))

	_, err = d.services.Sync.Start(ctx)
	assert.ErrorIs(t, err, ErrSyncDisabled)
}

func TestSyncEngine_SetupNetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockSyncTransport(ctrl)

	transport.EXPECT().SetServer(gomock.Any()).Return(nil)
	transport.EXPECT().SetToken(gomock.Any()).AnyTimes()
	transport.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).Return(adapter.ErrNetwork)

	d := newTestDevice(t, "device-a", transport)

	status, err := d.services.Sync.Init(context.Background(), models.SetupRequest{
		Server:   "relay.test",
		Username: "alice",
		Token:    "token",
	})
	require.ErrorIs(t, err, adapter.ErrNetwork)
	assert.Equal(t, models.SyncStateDisabled, status.State)
	assert.Zero(t, d.notifier.count(NotifyAuthStatusChanged))
}

func TestSyncEngine_InitValidation(t *testing.T) {
	d := newTestDevice(t, "device-a", newRelayTransport(t, newTestRelay(t), "alice"))

	tests := []struct {
		name string
		req  models.SetupRequest
	}{
		{name: "empty server", req: models.SetupRequest{Username: "alice", Token: "t"}},
		{name: "empty username", req: models.SetupRequest{Server: "http://relay.test", Token: "t"}},
		{name: "bad scheme", req: models.SetupRequest{Server: "ftp://relay.test", Username: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.services.Sync.Init(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestSyncEngine_AwaitingAuthentication(t *testing.T) {
	ctx := context.Background()
	d := newTestDevice(t, "device-a", newRelayTransport(t, newTestRelay(t), "alice"))

	_, err := d.services.Sync.Authenticate(ctx, "token")
	require.ErrorIs(t, err, ErrInvalidState)

	status, err := d.services.Sync.Init(ctx, models.SetupRequest{Server: "http://relay.test", Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateAwaitingAuthentication, status.State)

	_, err = d.services.Sync.Start(ctx)
	require.ErrorIs(t, err, ErrSyncDisabled)

	_, err = d.services.Sync.Authenticate(ctx, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	status, err = d.services.Sync.Authenticate(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateReady, status.State)
	assert.NotEmpty(t, status.ClientID)
	assert.Equal(t, models.AuthStatus{Authenticated: true, Username: "alice"}, d.notifier.lastPayload(NotifyAuthStatusChanged))

	_, err = d.services.Sync.Authenticate(ctx, "token")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSyncEngine_LoadRestoresState(t *testing.T) {
	ctx := context.Background()
	relay := newTestRelay(t)
	d := newTestDevice(t, "device-a", newRelayTransport(t, relay, "alice"))

	status, err := d.services.Sync.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateDisabled, status.State)

	d.enable(t)
	first, err := d.services.Sync.Status(ctx)
	require.NoError(t, err)

	restarted := NewSyncService(d.deps())
	status, err = restarted.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateReady, status.State)
	assert.Equal(t, first.ClientID, status.ClientID)
	assert.True(t, restarted.Enabled())

	// same account keeps the client id across setup
	status, err = restarted.Init(ctx, models.SetupRequest{Server: "http://relay.test", Username: "alice", Token: "token"})
	require.NoError(t, err)
	assert.Equal(t, first.ClientID, status.ClientID)
}

func TestSyncEngine_OnlyOnePassAtATime(t *testing.T) {
	ctx := context.Background()
	d := newTestDevice(t, "device-a", newRelayTransport(t, newTestRelay(t), "alice"))
	d.enable(t)

	d.engine.running.Store(true)

	status, err := d.services.Sync.Start(ctx)
	require.NoError(t, err)
	assert.True(t, status.Skipped)

	status, err = d.services.Sync.Reconcile(ctx)
	require.NoError(t, err)
	assert.True(t, status.Skipped)

	_, err = d.services.Sync.FetchFullDB(ctx)
	assert.ErrorIs(t, err, ErrSyncInProgress)
	_, err = d.services.Sync.UploadFullDB(ctx)
	assert.ErrorIs(t, err, ErrSyncInProgress)
	_, err = d.services.Sync.Reset(ctx)
	assert.ErrorIs(t, err, ErrSyncInProgress)
	_, err = d.services.Sync.Init(ctx, models.SetupRequest{Server: "http://relay.test", Username: "alice", Token: "token"})
	assert.ErrorIs(t, err, ErrSyncInProgress)
	_, err = d.services.Sync.Authenticate(ctx, "token")
	assert.ErrorIs(t, err, ErrSyncInProgress)

	d.engine.running.Store(false)
	status = d.sync(t)
	assert.Equal(t, models.SyncStateReady, status.State)
}

func TestSyncEngine_SwitchingAccountStartsOver(t *testing.T) {
	ctx := context.Background()
	relay := newTestRelay(t)

	bob := newTestDevice(t, "device-b", newRelayTransport(t, relay, "bob"))
	_, err := bob.services.Sync.Init(ctx, models.SetupRequest{Server: "http://relay.test", Username: "bob", Token: "bob-token"})
	require.NoError(t, err)
	bobNote, err := bob.services.Notes.Create(ctx, models.Note{Title: "bob's plan"})
	require.NoError(t, err)
	bob.sync(t)

	transport := newRelayTransport(t, relay, "alice")
	a := newTestDevice(t, "device-a", transport)
	a.enable(t)
	aliceNote, err := a.services.Notes.Create(ctx, models.Note{Title: "alice's list"})
	require.NoError(t, err)
	a.sync(t)
	status := a.sync(t)
	require.False(t, status.Cursor.IsZero())
	require.EqualValues(t, 0, status.Pending)

	transport.setUser("bob")
	status, err = a.services.Sync.Init(ctx, models.SetupRequest{Server: "http://relay.test", Username: "bob", Token: "bob-token"})
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateReady, status.State)
	assert.True(t, status.Cursor.IsZero())
	assert.EqualValues(t, 1, status.Pending)

	status = a.sync(t)
	assert.Equal(t, 1, status.Report.Pulled)
	assert.Equal(t, 1, status.Report.Applied)
	assert.Equal(t, 1, status.Report.Pushed)
	assert.Equal(t, map[string]string{bobNote.ID: "bob's plan", aliceNote.ID: "alice's list"}, a.noteTitles(t))

	bob.sync(t)
	assert.Equal(t, map[string]string{bobNote.ID: "bob's plan", aliceNote.ID: "alice's list"}, bob.noteTitles(t))
}

func TestSyncEngine_ArrivalOrderDoesNotDecideWinner(t *testing.T) {
	ctx := context.Background()
	relay := newTestRelay(t)
	reader := newTestDevice(t, "device-r", newRelayTransport(t, relay, "alice"))
	reader.enable(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	created := sealedNoteChange(t, "e-create", "device-x", 1, models.OperationCreate, models.Note{ID: "n-1", Title: "draft"}, base)
	older := sealedNoteChange(t, "e-old", "device-x", 2, models.OperationUpdate, models.Note{ID: "n-1", Title: "old"}, base.Add(time.Second))
	newer := sealedNoteChange(t, "e-new", "device-y", 1, models.OperationUpdate, models.Note{ID: "n-1", Title: "new"}, base.Add(2*time.Second))

	// the newer edit reaches the relay before the older one
	for _, batch := range [][]models.ChangelogEntry{{created}, {newer}} {
		_, err := relay.UploadChanges(ctx, "alice", batch)
		require.NoError(t, err)
	}

	status := reader.sync(t)
	assert.Equal(t, 2, status.Report.Pulled)
	assert.Equal(t, 2, status.Report.Applied)
	assert.Equal(t, map[string]string{"n-1": "new"}, reader.noteTitles(t))

	_, err := relay.UploadChanges(ctx, "alice", []models.ChangelogEntry{older})
	require.NoError(t, err)

	status = reader.sync(t)
	assert.Equal(t, 1, status.Report.Pulled)
	assert.Zero(t, status.Report.Applied)
	assert.Equal(t, map[string]string{"n-1": "new"}, reader.noteTitles(t))

	fresh := newTestDevice(t, "device-f", newRelayTransport(t, relay, "alice"))
	fresh.enable(t)
	status = fresh.sync(t)
	assert.Equal(t, 3, status.Report.Pulled)
	assert.Equal(t, map[string]string{"n-1": "new"}, fresh.noteTitles(t))
}

func TestSyncEngine_RetryAfterLostPushReplyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	relay := newTestRelay(t)
	transport := newRelayTransport(t, relay, "alice")
	d := newTestDevice(t, "device-a", transport)
	d.enable(t)

	for _, title := range []string{"one", "two", "three"} {
		_, err := d.services.Notes.Create(ctx, models.Note{Title: title})
		require.NoError(t, err)
	}

	transport.setDropReply(true)
	status, err := d.services.Sync.Start(ctx)
	require.ErrorIs(t, err, adapter.ErrNetwork)
	assert.ErrorContains(t, err, "push failed")
	assert.EqualValues(t, 3, status.Pending)

	onRelay, err := relay.ListChanges(ctx, "alice", nil)
	require.NoError(t, err)
	require.Len(t, onRelay, 3)

	transport.setDropReply(false)
	status = d.sync(t)
	assert.Equal(t, 3, status.Report.Pushed)
	assert.EqualValues(t, 0, status.Pending)

	onRelay, err = relay.ListChanges(ctx, "alice", nil)
	require.NoError(t, err)
	assert.Len(t, onRelay, 3)
	assert.Len(t, d.noteTitles(t), 3)
}

// sealedNoteChange builds an entry the test cipher can open.
func sealedNoteChange(t *testing.T, id, deviceID string, seq int64, op models.Operation, note models.Note, at time.Time) models.ChangelogEntry {
	t.Helper()

	body, err := json.Marshal(note)
	require.NoError(t, err)
	payload, err := json.Marshal(models.ChangePayload{Body: body})
	require.NoError(t, err)
	sealed, err := (&testCipher{}).Encrypt(context.Background(), payload)
	require.NoError(t, err)

	return models.ChangelogEntry{
		ID:         id,
		DeviceID:   deviceID,
		Sequence:   seq,
		EntityKind: models.EntityKindNote,
		EntityID:   note.ID,
		Operation:  op,
		Payload:    sealed,
		CreatedAt:  at,
	}
}

func TestSyncEngine_RejectsUnreadableEntry(t *testing.T) {
	ctx := context.Background()
	relay := newTestRelay(t)
	a := newTestDevice(t, "device-a", newRelayTransport(t, relay, "alice"))
	b := newTestDevice(t, "device-b", newRelayTransport(t, relay, "alice"))
	a.enable(t)
	b.enable(t)

	_, err := relay.UploadChanges(ctx, "alice", []models.ChangelogEntry{{
		ID:         "foreign-1",
		DeviceID:   "device-x",
		Sequence:   1,
		EntityKind: models.EntityKindNote,
		EntityID:   "n-foreign",
		Operation:  models.OperationCreate,
		Payload:    []byte("sealed with another key"),
		CreatedAt:  time.Now().UTC(),
	}})
	require.NoError(t, err)

	_, err = a.services.Notes.Create(ctx, models.Note{Title: "readable"})
	require.NoError(t, err)
	a.sync(t)

	status := b.sync(t)
	assert.Equal(t, 2, status.Report.Pulled)
	assert.Equal(t, 1, status.Report.Applied)
	assert.Equal(t, 1, status.Report.Rejected)
	assert.Equal(t, 1, b.notifier.count(NotifySyncEntryRejected))

	rejected, ok := b.notifier.lastPayload(NotifySyncEntryRejected).(models.RejectedEntry)
	require.True(t, ok)
	assert.Equal(t, "foreign-1", rejected.ID)
	assert.Len(t, b.noteTitles(t), 1)

	// the cursor moved past the rejected entry
	status = b.sync(t)
	assert.Zero(t, status.Report.Pulled)
}

func TestSyncEngine_LockedKeyKeepsCursor(t *testing.T) {
	ctx := context.Background()
	relay := newTestRelay(t)
	a := newTestDevice(t, "device-a", newRelayTransport(t, relay, "alice"))
	b := newTestDevice(t, "device-b", newRelayTransport(t, relay, "alice"))
	a.enable(t)
	b.enable(t)

	_, err := a.services.Notes.Create(ctx, models.Note{Title: "first"})
	require.NoError(t, err)
	a.sync(t)

	b.cipher.setLocked(true)
	status, err := b.services.Sync.Start(ctx)
	require.ErrorIs(t, err, crypto.ErrKeyUnavailable)
	assert.Equal(t, models.SyncStateError, status.State)
	assert.True(t, status.Cursor.IsZero())
	assert.Zero(t, b.notifier.count(NotifySyncEntryRejected))

	b.cipher.setLocked(false)
	status = b.sync(t)
	assert.Equal(t, models.SyncStateReady, status.State)
	assert.Empty(t, status.LastError)
	assert.Equal(t, 1, status.Report.Applied)
}

func TestSyncEngine_PushesInBatches(t *testing.T) {
	ctx := context.Background()
	transport := newRelayTransport(t, newTestRelay(t), "alice")
	d := newTestDevice(t, "device-a", transport)
	d.engine.batchSize = 2
	d.enable(t)

	for i := 0; i < 5; i++ {
		_, err := d.services.Notes.Create(ctx, models.Note{Title: "note"})
		require.NoError(t, err)
	}

	status := d.sync(t)
	assert.Equal(t, 5, status.Report.Pushed)
	assert.EqualValues(t, 0, status.Pending)
	assert.Equal(t, 3, transport.uploads())
}

func TestSyncEngine_FailedPushKeepsEntriesPending(t *testing.T) {
	ctx := context.Background()
	transport := newRelayTransport(t, newTestRelay(t), "alice")
	d := newTestDevice(t, "device-a", transport)
	d.enable(t)

	_, err := d.services.Notes.Create(ctx, models.Note{Title: "offline edit"})
	require.NoError(t, err)

	transport.setOffline(true)
	status, err := d.services.Sync.Start(ctx)
	require.ErrorIs(t, err, adapter.ErrNetwork)
	assert.ErrorContains(t, err, "pull failed")
	assert.Equal(t, models.SyncStateError, status.State)
	assert.EqualValues(t, 1, status.Pending)

	transport.setOffline(false)
	transport.setFailPush(true)
	_, err = d.services.Sync.Start(ctx)
	require.ErrorIs(t, err, adapter.ErrRemote)
	assert.ErrorContains(t, err, "push failed")
	assert.EqualValues(t, 1, d.pending(t))

	transport.setFailPush(false)
	status = d.sync(t)
	assert.EqualValues(t, 0, status.Pending)
}

func TestSyncEngine_UnauthorizedPassNotifiesAuth(t *testing.T) {
	ctx := context.Background()
	transport := newRelayTransport(t, newTestRelay(t), "alice")
	d := newTestDevice(t, "device-a", transport)
	d.enable(t)

	transport.SetToken("")
	status, err := d.services.Sync.Start(ctx)
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, models.SyncStateError, status.State)
	assert.Equal(t, models.AuthStatus{Authenticated: false, Username: "alice"}, d.notifier.lastPayload(NotifyAuthStatusChanged))
}

func TestSyncEngine_OwnEntriesRaiseSequence(t *testing.T) {
	ctx := context.Background()
	relay := newTestRelay(t)
	original := newTestDevice(t, "device-a", newRelayTransport(t, relay, "alice"))
	original.enable(t)

	for i := 0; i < 3; i++ {
		_, err := original.services.Notes.Create(ctx, models.Note{Title: "before reinstall"})
		require.NoError(t, err)
	}
	original.sync(t)

	reinstalled := newTestDevice(t, "device-a", newRelayTransport(t, relay, "alice"))
	reinstalled.enable(t)
	reinstalled.sync(t)

	var seq int64
	err := reinstalled.storages.DB.View(ctx, func(q store.Querier) error {
		var seqErr error
		seq, seqErr = reinstalled.storages.Entities.CurrentSequence(ctx, q, "device-a")
		return seqErr
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, seq)

	_, err = reinstalled.services.Notes.Create(ctx, models.Note{Title: "after reinstall"})
	require.NoError(t, err)
	status := reinstalled.sync(t)
	assert.Equal(t, 1, status.Report.Pushed)
}

func TestSyncEngine_ReconcilePullsEverything(t *testing.T) {
	ctx := context.Background()
	relay := newTestRelay(t)
	a := newTestDevice(t, "device-a", newRelayTransport(t, relay, "alice"))
	a.enable(t)

	_, err := a.services.Notes.Create(ctx, models.Note{Title: "one"})
	require.NoError(t, err)
	a.sync(t)

	status := a.sync(t)
	assert.Equal(t, 1, status.Report.Pulled)

	status = a.sync(t)
	assert.Zero(t, status.Report.Pulled)

	status, err = a.services.Sync.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.Report.Pulled)
	assert.Zero(t, status.Report.Applied)
}

func TestSyncEngine_Reset(t *testing.T) {
	ctx := context.Background()
	d := newTestDevice(t, "device-a", newRelayTransport(t, newTestRelay(t), "alice"))
	require.NoError(t, d.storages.SyncInfo.SaveDeviceID(ctx, "device-a"))
	d.enable(t)
	d.sync(t)

	status, err := d.services.Sync.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateDisabled, status.State)
	assert.Empty(t, status.Username)
	assert.True(t, status.Cursor.IsZero())
	assert.False(t, d.services.Sync.Enabled())

	_, ok, err := d.storages.SyncInfo.GetSyncInfo(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	deviceID, err := d.storages.SyncInfo.GetDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "device-a", deviceID)
}

func TestSafeCursor(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(sec int) models.ChangelogEntry {
		return models.ChangelogEntry{ReceivedAt: base.Add(time.Duration(sec) * time.Second)}
	}

	tests := []struct {
		name      string
		entries   []models.ChangelogEntry
		processed []bool
		want      time.Time
		wantOK    bool
	}{
		{
			name:      "all processed",
			entries:   []models.ChangelogEntry{at(1), at(2), at(3)},
			processed: []bool{true, true, true},
			want:      base.Add(3 * time.Second),
			wantOK:    true,
		},
		{
			name:      "stops before first gap",
			entries:   []models.ChangelogEntry{at(1), at(2), at(3)},
			processed: []bool{true, false, true},
			want:      base.Add(time.Second),
			wantOK:    true,
		},
		{
			name:      "application order differs from receive order",
			entries:   []models.ChangelogEntry{at(3), at(1), at(2)},
			processed: []bool{true, true, false},
			want:      base.Add(time.Second),
			wantOK:    true,
		},
		{
			name:      "first entry failed",
			entries:   []models.ChangelogEntry{at(1), at(2)},
			processed: []bool{false, true},
			wantOK:    false,
		},
		{
			name:      "nothing processed",
			entries:   []models.ChangelogEntry{at(1)},
			processed: []bool{false},
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := safeCursor(tt.entries, tt.processed)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEnsureDeviceID(t *testing.T) {
	ctx := context.Background()
	d := newTestDevice(t, "unused", newRelayTransport(t, newTestRelay(t), "alice"))

	generated, err := EnsureDeviceID(ctx, d.storages.SyncInfo, "")
	require.NoError(t, err)
	require.NotEmpty(t, generated)

	again, err := EnsureDeviceID(ctx, d.storages.SyncInfo, "")
	require.NoError(t, err)
	assert.Equal(t, generated, again)

	configured, err := EnsureDeviceID(ctx, d.storages.SyncInfo, "laptop")
	require.NoError(t, err)
	assert.Equal(t, "laptop", configured)

	stored, err := d.storages.SyncInfo.GetDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "laptop", stored)
}

func TestEnsureDeviceID_StorageFailures(t *testing.T) {
	diskErr := errors.New("disk full")

	tests := []struct {
		name    string
		prepare func(s *mock.MockSyncInfoStore)
	}{
		{
			name: "read fails",
			prepare: func(s *mock.MockSyncInfoStore) {
				s.EXPECT().GetDeviceID(gomock.Any()).Return("", diskErr)
			},
		},
		{
			name: "save fails",
			prepare: func(s *mock.MockSyncInfoStore) {
				s.EXPECT().GetDeviceID(gomock.Any()).Return("", nil)
				s.EXPECT().SaveDeviceID(gomock.Any(), gomock.Any()).Return(diskErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			syncInfo := mock.NewMockSyncInfoStore(ctrl)
			tt.prepare(syncInfo)

			id, err := EnsureDeviceID(context.Background(), syncInfo, "")
			assert.ErrorIs(t, err, diskErr)
			assert.Empty(t, id)
		})
	}
}

func TestStorageErrorMatchesSentinel(t *testing.T) {
	base := errors.New("disk full")
	err := storageError("write", base)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, base)
	assert.Same(t, err, storageError("again", err))
	assert.NoError(t, storageError("noop", nil))
}
