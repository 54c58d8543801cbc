// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-notes-sync/internal/adapter"
	"github.com/MKhiriev/go-notes-sync/internal/bridge"
	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/metrics"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/workers"
	"github.com/MKhiriev/go-notes-sync/models"
)

// watchedNotifications are logged by the foreground while the app runs.
var watchedNotifications = []string{
	service.NotifySyncStatusChanged,
	service.NotifySyncCompleted,
	service.NotifySyncEntryRejected,
	service.NotifyAuthStatusChanged,
	workers.NotifyJobFailed,
}

type App struct {
	cfg    *config.ClientConfig
	logger *logger.Logger

	keyRing   *crypto.KeyRing
	storages  *store.ClientStorages
	metrics   *metrics.Metrics
	scheduler *workers.Scheduler
	host      *bridge.Host
	client    *bridge.Client

	Sync        *bridge.SyncStub
	Notes       *bridge.NotesStub
	Attachments *bridge.AttachmentsStub
	Jobs        *bridge.SchedulerStub

	serveCancel context.CancelFunc
	serveDone   chan struct{}
	watchers    sync.WaitGroup
	closeOnce   sync.Once
}

var _ Client = (*App)(nil)

// NewApp wires the client. The key is derived in the background; calls
// that need it wait at most cfg.App.KeyWaitTimeout.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	log.Info().Msg("creating client app...")

	keyRing := crypto.NewKeyRing(cfg.App.KeyWaitTimeout)
	keyRing.UnlockAsync(cfg.App.MasterPassword)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, keyRing, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	app, err := newApp(ctx, cfg, keyRing, storages, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, cfg *config.ClientConfig, keyRing *crypto.KeyRing, storages *store.ClientStorages, log *logger.Logger) (*App, error) {
	deviceID, err := service.EnsureDeviceID(ctx, storages.SyncInfo, cfg.App.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("ensure device id: %w", err)
	}
	log.Info().Str("device_id", deviceID).Msg("device identified")

	m, err := metrics.NewMetrics()
	if err != nil {
		return nil, fmt.Errorf("create metrics: %w", err)
	}

	foreground, background := bridge.NewPipe(bridge.DefaultQueueSize)
	registry := bridge.NewRegistry()
	host := bridge.NewHost(background, registry, log)

	services := service.NewClientServices(service.ClientDependencies{
		DB:        storages.DB,
		Changelog: storages.Changelog,
		Entities:  storages.Entities,
		SyncInfo:  storages.SyncInfo,
		Files:     storages.Attachments,
		Transport: adapter.NewHTTPSyncTransport(cfg.Adapter, log),
		Cipher:    keyRing,
		Notifier:  host,
		DeviceID:  deviceID,
		Logger:    log,
	})

	scheduler := workers.NewScheduler(cfg.Workers, host, m, log)
	if err = workers.RegisterClientJobs(scheduler, cfg.Workers, services.Sync, storages.DB, storages.Changelog, log); err != nil {
		return nil, fmt.Errorf("register jobs: %w", err)
	}

	err = bridge.Controllers{
		Sync:        services.Sync,
		Notes:       services.Notes,
		Attachments: services.Attachments,
		Scheduler:   scheduler,
	}.Register(registry)
	if err != nil {
		return nil, fmt.Errorf("register bridge handlers: %w", err)
	}

	serveCtx, serveCancel := context.WithCancel(context.WithoutCancel(ctx))
	serveDone := make(chan struct{})
	go func() {
		defer close(serveDone)
		if err := host.Serve(serveCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Err(err).Msg("bridge host stopped")
		}
	}()

	client := bridge.NewClient(foreground, log)

	return &App{
		cfg:         cfg,
		logger:      log,
		keyRing:     keyRing,
		storages:    storages,
		metrics:     m,
		scheduler:   scheduler,
		host:        host,
		client:      client,
		Sync:        bridge.NewSyncStub(client),
		Notes:       bridge.NewNotesStub(client),
		Attachments: bridge.NewAttachmentsStub(client),
		Jobs:        bridge.NewSchedulerStub(client),
		serveCancel: serveCancel,
		serveDone:   serveDone,
	}, nil
}

// Start restores the sync state and applies the configured setup. A setup
// that fails because the relay is unreachable is logged and the app keeps
// working offline.
func (a *App) Start(ctx context.Context) error {
	status, err := a.Sync.Load(ctx)
	if err != nil {
		return fmt.Errorf("load sync state: %w", err)
	}
	a.logger.Info().Str("state", string(status.State)).Msg("sync state loaded")

	if needsSetup(status, a.cfg.Sync) {
		status, err = a.Sync.Init(ctx, models.SetupRequest{
			Server:   a.cfg.Sync.Server,
			Username: a.cfg.Sync.Username,
			Token:    a.cfg.Sync.Token,
		})
		if err != nil {
			a.logger.Err(err).Str("server", a.cfg.Sync.Server).Msg("sync setup failed")
		} else {
			a.logger.Info().Str("state", string(status.State)).Msg("sync setup applied")
		}
	}

	if err = a.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	return nil
}

// Run starts the app, syncs once as if it came to the foreground and
// blocks until ctx is done. A ctx that ends during startup is a clean
// shutdown.
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		if ctx.Err() != nil {
			a.logger.Info().Err(err).Msg("client app stopped during startup")
			return nil
		}
		return err
	}
	if err := a.watch(); err != nil {
		return err
	}

	if _, err := a.Jobs.Trigger(ctx, workers.EventForeground); err != nil {
		a.logger.Err(err).Msg("foreground sync failed")
	}

	<-ctx.Done()
	return nil
}

func (a *App) watch() error {
	for _, name := range watchedNotifications {
		l, err := a.client.Subscribe(name)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", name, err)
		}

		a.watchers.Add(1)
		go func() {
			defer a.watchers.Done()
			for n := range l.Events() {
				ev := a.logger.Info().Str("notification", n.Name)
				if len(n.Data) > 0 {
					ev = ev.RawJSON("data", n.Data)
				}
				ev.Msg("background event")
			}
		}()
	}
	return nil
}

// Close stops the scheduler, tears down the bridge and closes the
// storages. It is safe to call more than once.
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() {
		a.scheduler.Stop()

		err = a.client.Close()
		a.watchers.Wait()
		a.serveCancel()
		<-a.serveDone

		err = errors.Join(err, a.storages.Close())
		a.keyRing.Lock()
		a.logger.Info().Msg("client app closed")
	})
	return err
}

// needsSetup reports whether the configured sync settings differ from the
// loaded state.
func needsSetup(status models.StatusInfo, cfg config.ClientSync) bool {
	if cfg.Server == "" || cfg.Username == "" {
		return false
	}
	if status.Server != cfg.Server || status.Username != cfg.Username {
		return true
	}

	switch status.State {
	case models.SyncStateDisabled:
		return true
	case models.SyncStateAwaitingAuthentication:
		return cfg.Token != ""
	default:
		return false
	}
}
