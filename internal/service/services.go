// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/adapter"
	"github.com/MKhiriev/go-notes-sync/internal/attachment"
	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
)

// ClientDependencies are the collaborators of the client controllers.
type ClientDependencies struct {
	DB        store.LocalDatabase
	Changelog store.ChangelogRepository
	Entities  store.EntityRepository
	SyncInfo  store.SyncInfoStore
	Files     store.AttachmentFileStore
	Transport adapter.SyncTransport
	Cipher    crypto.Cipher
	Notifier  Notifier
	DeviceID  string
	// PushBatchSize defaults to DefaultPushBatchSize.
	PushBatchSize uint64
	Logger        *logger.Logger
}

// ClientServices groups the controllers exposed through the bridge.
type ClientServices struct {
	Sync        SyncService
	Notes       NotesService
	Attachments AttachmentService
}

func NewClientServices(deps ClientDependencies) *ClientServices {
	engine := newSyncEngine(deps)
	recorder := newChangeRecorder(deps)
	validator := validators.NewSyncValidator()

	return &ClientServices{
		Sync: engine,
		Notes: &notesService{
			recorder:  recorder,
			validator: validator,
			noteIDs:   utils.NewUUIDGenerator(),
			notifier:  engine.notifier,
			logger:    deps.Logger.Component("notes"),
		},
		Attachments: &attachmentService{
			recorder:    recorder,
			files:       deps.Files,
			fetcher:     attachment.NewFetcher(deps.Transport, deps.Cipher, deps.Logger),
			uploader:    attachment.NewUploader(deps.Transport, deps.Cipher, deps.Logger),
			validator:   validator,
			syncEnabled: engine.Enabled,
			logger:      deps.Logger.Component("attachments"),
		},
	}
}

// NewSyncService returns the sync engine alone.
func NewSyncService(deps ClientDependencies) SyncService {
	return newSyncEngine(deps)
}

func newSyncEngine(deps ClientDependencies) *syncEngine {
	batch := deps.PushBatchSize
	if batch == 0 {
		batch = DefaultPushBatchSize
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}

	e := &syncEngine{
		db:        deps.DB,
		changelog: deps.Changelog,
		entities:  deps.Entities,
		syncInfo:  deps.SyncInfo,
		transport: deps.Transport,
		cipher:    deps.Cipher,
		validator: validators.NewSyncValidator(),
		notifier:  notifier,
		clientIDs: utils.NewUUIDGenerator(),
		deviceID:  deps.DeviceID,
		batchSize: batch,
		now:       time.Now,
		logger:    deps.Logger.Component("sync"),
	}
	e.state = models.SyncStateDisabled
	return e
}

func newChangeRecorder(deps ClientDependencies) *changeRecorder {
	return &changeRecorder{
		db:        deps.DB,
		changelog: deps.Changelog,
		entities:  deps.Entities,
		encrypter: deps.Cipher,
		entryIDs:  utils.NewULIDGenerator(),
		deviceID:  deps.DeviceID,
		now:       time.Now,
	}
}

// EnsureDeviceID returns the persisted device id, storing configured (or
// a freshly generated id) on first start. A configured id that differs
// from the stored one wins and is persisted.
func EnsureDeviceID(ctx context.Context, syncInfo store.SyncInfoStore, configured string) (string, error) {
	stored, err := syncInfo.GetDeviceID(ctx)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}

	switch {
	case configured != "" && configured != stored:
		stored = configured
	case stored == "":
		stored = utils.NewUUIDGenerator().Generate()
	default:
		return stored, nil
	}

	if err = syncInfo.SaveDeviceID(ctx, stored); err != nil {
		return "", fmt.Errorf("save device id: %w", err)
	}
	return stored, nil
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, string, any) {}

// RelayServices are the services behind the relay HTTP API.
type RelayServices struct {
	Relay  RelayService
	Tokens TokenService
}

func NewRelayServices(repository store.RelayRepository, cfg *config.RelayConfig, logger *logger.Logger) *RelayServices {
	return &RelayServices{
		Relay:  NewRelayService(repository, validators.NewSyncValidator(), logger.Component("relay")),
		Tokens: NewTokenService(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration, logger.Component("tokens")),
	}
}
