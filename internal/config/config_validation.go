// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged config. Binary-specific rules live on the
// views; the shared config has none.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || cfg.Storage.AttachmentsDir == "" || cfg.Storage.KVPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.FullSyncInterval <= 0 || cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.MasterPassword == "" || cfg.App.KeyWaitTimeout <= 0 {
		return ErrInvalidAppConfigs
	}

	if (cfg.Sync.Server == "") != (cfg.Sync.Username == "") {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *RelayConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
