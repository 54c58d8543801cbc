// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-sync/internal/adapter"
	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
)

// testCipher is a reversible stand-in for the key ring.
type testCipher struct {
	mu     sync.Mutex
	locked bool
}

var testSealPrefix = []byte("sealed:")

func (c *testCipher) setLocked(locked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locked = locked
}

func (c *testCipher) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locked {
		return nil, crypto.ErrKeyUnavailable
	}
	return append(bytes.Clone(testSealPrefix), plaintext...), nil
}

func (c *testCipher) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locked {
		return nil, crypto.ErrKeyUnavailable
	}
	if !bytes.HasPrefix(ciphertext, testSealPrefix) {
		return nil, crypto.ErrDecrypt
	}
	return append([]byte{}, ciphertext[len(testSealPrefix):]...), nil
}

// relayTransport talks to an in-process relay as a single user.
type relayTransport struct {
	relay    RelayService
	username string

	mu          sync.Mutex
	server      string
	token       string
	offline     bool
	failPush    bool
	dropReply   bool
	uploadCalls int
}

func newRelayTransport(t *testing.T, relay RelayService, username string) *relayTransport {
	t.Helper()
	return &relayTransport{relay: relay, username: username}
}

func newTestRelay(t *testing.T) RelayService {
	t.Helper()

	repo, err := store.NewMemoryRelayRepository(logger.Nop())
	require.NoError(t, err)
	return NewRelayService(repo, validators.NewSyncValidator(), logger.Nop())
}

// setUser points the transport at another relay account.
func (r *relayTransport) setUser(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.username = username
}

func (r *relayTransport) user() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.username
}

func (r *relayTransport) setOffline(offline bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offline = offline
}

func (r *relayTransport) setFailPush(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failPush = fail
}

// setDropReply makes uploads reach the relay but report a network error.
func (r *relayTransport) setDropReply(drop bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dropReply = drop
}

func (r *relayTransport) uploads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uploadCalls
}

func (r *relayTransport) check() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.offline {
		return adapter.ErrNetwork
	}
	if r.token == "" {
		return adapter.ErrUnauthorized
	}
	return nil
}

func (r *relayTransport) SetServer(server string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.server = server
	return nil
}

func (r *relayTransport) SetToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
}

func (r *relayTransport) RegisterClient(ctx context.Context, clientID string) error {
	if err := r.check(); err != nil {
		return err
	}
	return r.relay.RegisterClient(ctx, r.user(), models.RegisterClientRequest{ClientID: clientID})
}

func (r *relayTransport) GetFullSnapshot(ctx context.Context) (models.Snapshot, error) {
	if err := r.check(); err != nil {
		return models.Snapshot{}, err
	}
	blob, err := r.relay.GetSnapshot(ctx, r.user())
	if errors.Is(err, store.ErrBlobNotFound) {
		return models.Snapshot{}, adapter.ErrNotFound
	}
	if err != nil {
		return models.Snapshot{}, err
	}
	return models.Snapshot{Data: blob.Data, RelayTime: blob.UpdatedAt}, nil
}

func (r *relayTransport) UploadFullSnapshot(ctx context.Context, data []byte) error {
	if err := r.check(); err != nil {
		return err
	}
	return r.relay.PutSnapshot(ctx, r.user(), data)
}

func (r *relayTransport) ListChangelogEntries(ctx context.Context, since *time.Time) ([]models.ChangelogEntry, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	return r.relay.ListChanges(ctx, r.user(), since)
}

func (r *relayTransport) UploadChangelogEntries(ctx context.Context, entries []models.ChangelogEntry) (int, error) {
	if err := r.check(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	fail, drop := r.failPush, r.dropReply
	r.uploadCalls++
	r.mu.Unlock()
	if fail {
		return 0, &adapter.RemoteError{Endpoint: "/api/sync/v1/changes", Status: 500}
	}
	stored, err := r.relay.UploadChanges(ctx, r.user(), entries)
	if err == nil && drop {
		return 0, adapter.ErrNetwork
	}
	return stored, err
}

func (r *relayTransport) UploadAttachment(ctx context.Context, path string, data []byte) error {
	if err := r.check(); err != nil {
		return err
	}
	return r.relay.PutAttachment(ctx, r.user(), path, data)
}

func (r *relayTransport) DownloadAttachment(ctx context.Context, path string) ([]byte, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	blob, err := r.relay.GetAttachment(ctx, r.user(), path)
	if errors.Is(err, store.ErrBlobNotFound) {
		return nil, adapter.ErrNotFound
	}
	return blob.Data, err
}

// recordingNotifier keeps every notification name in order.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
	last   map[string]any
}

func (n *recordingNotifier) Notify(_ context.Context, name string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, name)
	if n.last == nil {
		n.last = make(map[string]any)
	}
	n.last[name] = payload
}

func (n *recordingNotifier) count(name string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, e := range n.events {
		if e == name {
			c++
		}
	}
	return c
}

func (n *recordingNotifier) lastPayload(name string) any {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last[name]
}

// testDevice is one client install backed by real storages.
type testDevice struct {
	id        string
	storages  *store.ClientStorages
	transport adapter.SyncTransport
	cipher    *testCipher
	notifier  *recordingNotifier
	services  *ClientServices
	engine    *syncEngine
}

func newTestDevice(t *testing.T, deviceID string, transport adapter.SyncTransport) *testDevice {
	t.Helper()

	dir := t.TempDir()
	cipher := &testCipher{}
	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		DSN:            filepath.Join(dir, "notes.db"),
		AttachmentsDir: filepath.Join(dir, "attachments"),
		KVPath:         filepath.Join(dir, "sync.kv"),
	}, cipher, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	d := &testDevice{
		id:        deviceID,
		storages:  storages,
		transport: transport,
		cipher:    cipher,
		notifier:  &recordingNotifier{},
	}
	d.services = NewClientServices(d.deps())
	d.engine = d.services.Sync.(*syncEngine)
	return d
}

func (d *testDevice) deps() ClientDependencies {
	return ClientDependencies{
		DB:        d.storages.DB,
		Changelog: d.storages.Changelog,
		Entities:  d.storages.Entities,
		SyncInfo:  d.storages.SyncInfo,
		Files:     d.storages.Attachments,
		Transport: d.transport,
		Cipher:    d.cipher,
		Notifier:  d.notifier,
		DeviceID:  d.id,
		Logger:    logger.Nop(),
	}
}

// enable runs setup with a token against the test relay.
func (d *testDevice) enable(t *testing.T) {
	t.Helper()

	status, err := d.services.Sync.Init(context.Background(), models.SetupRequest{
		Server:   "http://relay.test",
		Username: "alice",
		Token:    "token",
	})
	require.NoError(t, err)
	require.Equal(t, models.SyncStateReady, status.State)
}

func (d *testDevice) sync(t *testing.T) models.StatusInfo {
	t.Helper()

	status, err := d.services.Sync.Start(context.Background())
	require.NoError(t, err)
	require.False(t, status.Skipped)
	return status
}

func (d *testDevice) pending(t *testing.T) int64 {
	t.Helper()

	status, err := d.services.Sync.Status(context.Background())
	require.NoError(t, err)
	return status.Pending
}

func (d *testDevice) noteTitles(t *testing.T) map[string]string {
	t.Helper()

	notes, err := d.services.Notes.List(context.Background())
	require.NoError(t, err)
	titles := make(map[string]string, len(notes))
	for _, n := range notes {
		titles[n.ID] = n.Title
	}
	return titles
}
