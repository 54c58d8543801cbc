// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		MasterPassword string   `json:"master_password"`
		DeviceID       string   `json:"device_id"`
		KeyWaitTimeout Duration `json:"key_wait_timeout"`
		LogDir         string   `json:"log_dir"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Files struct {
			AttachmentsDir string `json:"attachments_dir"`
		} `json:"files,omitempty"`
		KV struct {
			Path string `json:"path"`
		} `json:"kv,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval     Duration `json:"sync_interval"`
		FullSyncInterval Duration `json:"full_sync_interval"`
		CleanupInterval  Duration `json:"cleanup_interval"`
		CleanupRetention Duration `json:"cleanup_retention"`
		RetryAttempts    uint64   `json:"retry_attempts"`
		RetryBaseDelay   Duration `json:"retry_base_delay"`
	} `json:"workers,omitempty"`

	Sync struct {
		Server   string `json:"server"`
		Username string `json:"username"`
		Token    string `json:"token"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			MasterPassword: jsonCfg.App.MasterPassword,
			DeviceID:       jsonCfg.App.DeviceID,
			KeyWaitTimeout: time.Duration(jsonCfg.App.KeyWaitTimeout),
			LogDir:         jsonCfg.App.LogDir,
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{AttachmentsDir: jsonCfg.Storage.Files.AttachmentsDir},
			KV:    KV{Path: jsonCfg.Storage.KV.Path},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval:     time.Duration(jsonCfg.Workers.SyncInterval),
			FullSyncInterval: time.Duration(jsonCfg.Workers.FullSyncInterval),
			CleanupInterval:  time.Duration(jsonCfg.Workers.CleanupInterval),
			CleanupRetention: time.Duration(jsonCfg.Workers.CleanupRetention),
			RetryAttempts:    jsonCfg.Workers.RetryAttempts,
			RetryBaseDelay:   time.Duration(jsonCfg.Workers.RetryBaseDelay),
		},
		Sync: Sync{
			Server:   jsonCfg.Sync.Server,
			Username: jsonCfg.Sync.Username,
			Token:    jsonCfg.Sync.Token,
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from "1h"/"30s" strings or
// from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
