// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/adapter"
	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
)

// DefaultPushBatchSize bounds one changelog upload.
const DefaultPushBatchSize = 500

// syncEngine implements SyncService.
//
// Only one pass (incremental, reconcile or snapshot transfer) runs at a
// time; running is the single-flight guard. mu protects the in-memory
// state and is never held across network or database calls.
type syncEngine struct {
	db        store.LocalDatabase
	changelog store.ChangelogRepository
	entities  store.EntityRepository
	syncInfo  store.SyncInfoStore
	transport adapter.SyncTransport
	cipher    crypto.Cipher
	validator validators.Validator
	notifier  Notifier
	clientIDs IDGenerator

	deviceID  string
	batchSize uint64
	now       func() time.Time
	logger    *logger.Logger

	running atomic.Bool

	mu         sync.Mutex
	state      models.SyncState
	info       models.SyncInfo
	lastError  string
	lastSyncAt time.Time
	lastReport *models.SyncReport
}

func (e *syncEngine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.info.Enabled
}

func (e *syncEngine) Load(ctx context.Context) (models.StatusInfo, error) {
	info, ok, err := e.syncInfo.GetSyncInfo(ctx)
	if err != nil {
		e.logger.Err(err).Str("func", "syncEngine.Load").Msg("failed to read sync info")
		return e.Status(ctx)
	}

	switch {
	case ok && info.Enabled:
		if err = e.transport.SetServer(info.Server); err != nil {
			e.setState(models.SyncStateError, err)
			return e.Status(ctx)
		}
		e.transport.SetToken(info.Token)
		e.setInfo(info)
		e.setState(models.SyncStateReady, nil)
	case ok && info.Username != "":
		e.setInfo(info)
		e.setState(models.SyncStateAwaitingAuthentication, nil)
	default:
		e.setState(models.SyncStateDisabled, nil)
	}

	return e.Status(ctx)
}

func (e *syncEngine) Init(ctx context.Context, req models.SetupRequest) (models.StatusInfo, error) {
	if err := e.validator.Validate(ctx, req); err != nil {
		return models.StatusInfo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !e.running.CompareAndSwap(false, true) {
		return models.StatusInfo{}, ErrSyncInProgress
	}
	defer e.running.Store(false)

	stored, _, err := e.syncInfo.GetSyncInfo(ctx)
	if err != nil && !errors.Is(err, store.ErrSyncInfoCorrupted) {
		return models.StatusInfo{}, storageError("read sync info", err)
	}

	info := models.SyncInfo{Server: req.Server, Username: req.Username, Token: req.Token}
	sameAccount := stored.Server == req.Server && stored.Username == req.Username
	if sameAccount {
		info.ClientID = stored.ClientID
		if info.Token == "" {
			info.Token = stored.Token
		}
	} else if stored.Username != "" {
		if err = e.switchAccount(ctx); err != nil {
			return models.StatusInfo{}, err
		}
	}

	if info.Token == "" {
		if err = e.syncInfo.SaveSyncInfo(ctx, info); err != nil {
			return models.StatusInfo{}, storageError("save sync info", err)
		}
		e.setInfo(info)
		e.setState(models.SyncStateAwaitingAuthentication, nil)
		e.publishStatus(ctx)
		return e.Status(ctx)
	}

	return e.setUp(ctx, info)
}

func (e *syncEngine) Authenticate(ctx context.Context, token string) (models.StatusInfo, error) {
	if token == "" {
		return models.StatusInfo{}, ErrInvalidDataProvided
	}

	if !e.running.CompareAndSwap(false, true) {
		return models.StatusInfo{}, ErrSyncInProgress
	}
	defer e.running.Store(false)

	e.mu.Lock()
	state, info := e.state, e.info
	e.mu.Unlock()

	if state != models.SyncStateAwaitingAuthentication {
		return models.StatusInfo{}, fmt.Errorf("%w: %s", ErrInvalidState, state)
	}

	info.Token = token
	return e.setUp(ctx, info)
}

// switchAccount forgets the pull position of the previous account and queues
// every local entry for upload to the new one.
func (e *syncEngine) switchAccount(ctx context.Context) error {
	if err := e.syncInfo.SaveCursor(ctx, models.SyncCursor{}); err != nil {
		return storageError("reset cursor", err)
	}

	var requeued int64
	err := e.db.WithTx(ctx, func(q store.Querier) error {
		var markErr error
		requeued, markErr = e.changelog.MarkAllPending(ctx, q)
		return markErr
	})
	if err != nil {
		return storageError("requeue changelog", err)
	}

	e.logger.Info().Int64("requeued", requeued).Msg("sync account changed")
	return nil
}

// setUp registers the client with the relay and persists the enabled sync
// info. Any failure leaves sync disabled.
func (e *syncEngine) setUp(ctx context.Context, info models.SyncInfo) (models.StatusInfo, error) {
	e.setState(models.SyncStateSettingUp, nil)
	e.publishStatus(ctx)

	if info.ClientID == "" {
		info.ClientID = e.clientIDs.Generate()
	}

	err := e.transport.SetServer(info.Server)
	if err == nil {
		e.transport.SetToken(info.Token)
		err = e.transport.RegisterClient(ctx, info.ClientID)
	}
	if err != nil {
		e.logger.Err(err).Str("func", "syncEngine.setUp").Str("server", info.Server).Msg("sync setup failed")

		info.Enabled = false
		if errors.Is(err, adapter.ErrUnauthorized) {
			info.Token = ""
			e.notifier.Notify(ctx, NotifyAuthStatusChanged, models.AuthStatus{Authenticated: false, Username: info.Username})
		}
		if saveErr := e.syncInfo.SaveSyncInfo(ctx, info); saveErr != nil {
			e.logger.Err(saveErr).Str("func", "syncEngine.setUp").Msg("failed to save disabled sync info")
		}
		e.transport.SetToken("")
		e.setInfo(info)
		e.setState(models.SyncStateDisabled, err)
		e.publishStatus(ctx)

		status, _ := e.Status(ctx)
		return status, fmt.Errorf("setup failed: %w", err)
	}

	info.Enabled = true
	if err = e.syncInfo.SaveSyncInfo(ctx, info); err != nil {
		e.setState(models.SyncStateDisabled, err)
		status, _ := e.Status(ctx)
		return status, storageError("save sync info", err)
	}

	e.setInfo(info)
	e.setState(models.SyncStateReady, nil)
	e.notifier.Notify(ctx, NotifyAuthStatusChanged, models.AuthStatus{Authenticated: true, Username: info.Username})
	e.publishStatus(ctx)

	e.logger.Info().Str("username", info.Username).Str("client_id", info.ClientID).Msg("sync enabled")
	return e.Status(ctx)
}

func (e *syncEngine) Status(ctx context.Context) (models.StatusInfo, error) {
	e.mu.Lock()
	status := models.StatusInfo{
		State:      e.state,
		Server:     e.info.Server,
		Username:   e.info.Username,
		ClientID:   e.info.ClientID,
		LastSyncAt: e.lastSyncAt,
		LastError:  e.lastError,
		Report:     e.lastReport,
	}
	e.mu.Unlock()

	if cursor, err := e.syncInfo.GetCursor(ctx); err == nil {
		status.Cursor = cursor.Since
	}

	err := e.db.View(ctx, func(q store.Querier) error {
		var countErr error
		status.Pending, countErr = e.changelog.CountUnsynced(ctx, q)
		return countErr
	})
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.Status").Msg("failed to count pending entries")
	}

	return status, nil
}

func (e *syncEngine) Reset(ctx context.Context) (models.StatusInfo, error) {
	if !e.running.CompareAndSwap(false, true) {
		return models.StatusInfo{}, ErrSyncInProgress
	}
	defer e.running.Store(false)

	if err := e.syncInfo.Clear(ctx); err != nil {
		return models.StatusInfo{}, storageError("clear sync info", err)
	}
	e.transport.SetToken("")

	e.mu.Lock()
	e.info = models.SyncInfo{}
	e.lastReport = nil
	e.lastSyncAt = time.Time{}
	e.mu.Unlock()

	e.setState(models.SyncStateDisabled, nil)
	e.publishStatus(ctx)
	return e.Status(ctx)
}

func (e *syncEngine) setState(state models.SyncState, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = state
	if err != nil {
		e.lastError = err.Error()
	} else if state != models.SyncStateSyncing {
		e.lastError = ""
	}
}

func (e *syncEngine) setInfo(info models.SyncInfo) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.info = info
}

func (e *syncEngine) publishStatus(ctx context.Context) {
	status, _ := e.Status(ctx)
	e.notifier.Notify(ctx, NotifySyncStatusChanged, status)
}
