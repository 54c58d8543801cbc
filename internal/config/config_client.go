// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds identity and key settings of the client.
type ClientApp struct {
	MasterPassword string
	DeviceID       string
	KeyWaitTimeout time.Duration
	LogDir         string
}

// ClientAdapter holds relay call settings.
type ClientAdapter struct {
	RequestTimeout time.Duration
}

// ClientStorage holds local persistence locations.
type ClientStorage struct {
	// DSN is the SQLite database file.
	DSN string
	// AttachmentsDir holds plaintext attachment files.
	AttachmentsDir string
	// KVPath is the bbolt file with sync info and the cursor.
	KVPath string
}

// ClientWorkers holds scheduler intervals and the retry policy.
type ClientWorkers struct {
	SyncInterval     time.Duration
	FullSyncInterval time.Duration
	CleanupInterval  time.Duration
	CleanupRetention time.Duration
	RetryAttempts    uint64
	RetryBaseDelay   time.Duration
}

// ClientSync holds optional startup setup values.
type ClientSync struct {
	Server   string
	Username string
	Token    string
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Sync    ClientSync
	// Args is the one-shot command, empty when the client runs until
	// interrupted.
	Args []string
}

// GetClientConfig loads the merged configuration and returns the validated
// client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			MasterPassword: cfg.App.MasterPassword,
			DeviceID:       cfg.App.DeviceID,
			KeyWaitTimeout: cfg.App.KeyWaitTimeout,
			LogDir:         cfg.App.LogDir,
		},
		Adapter: ClientAdapter{RequestTimeout: cfg.Adapter.RequestTimeout},
		Storage: ClientStorage{
			DSN:            cfg.Storage.DB.DSN,
			AttachmentsDir: cfg.Storage.Files.AttachmentsDir,
			KVPath:         cfg.Storage.KV.Path,
		},
		Workers: ClientWorkers{
			SyncInterval:     cfg.Workers.SyncInterval,
			FullSyncInterval: cfg.Workers.FullSyncInterval,
			CleanupInterval:  cfg.Workers.CleanupInterval,
			CleanupRetention: cfg.Workers.CleanupRetention,
			RetryAttempts:    cfg.Workers.RetryAttempts,
			RetryBaseDelay:   cfg.Workers.RetryBaseDelay,
		},
		Sync: ClientSync{
			Server:   cfg.Sync.Server,
			Username: cfg.Sync.Username,
			Token:    cfg.Sync.Token,
		},
		Args: cfg.Args,
	}
}
