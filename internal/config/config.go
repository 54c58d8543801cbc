// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged configuration shared by both binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity, key material and token settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local database, attachment directory and key-value
	// store locations. On the relay only DB is used.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the relay listen settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound transport settings of the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the scheduler intervals and retry policy.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds optional setup values used to enable sync on startup.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`

	// IssueTokenFor asks the relay binary to print a token for the given
	// username and exit. Flag only.
	IssueTokenFor string

	// Args are the positional arguments left after the flags. The client
	// runs them as a one-shot command. Flag only.
	Args []string
}

// App holds application-level settings.
type App struct {
	// MasterPassword derives the encryption key shared by all devices of a
	// user. Env: APP_MASTER_PASSWORD
	MasterPassword string `env:"MASTER_PASSWORD"`

	// DeviceID identifies this device in changelog entries. Generated and
	// persisted on first start when empty. Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// KeyWaitTimeout bounds how long a crypto operation waits for the key
	// to become available. Env: APP_KEY_WAIT_TIMEOUT
	KeyWaitTimeout time.Duration `env:"KEY_WAIT_TIMEOUT"`

	// LogDir is where the client writes its log file. Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`

	// TokenSignKey signs and verifies relay tokens. Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of relay tokens. Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens. Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by the relay. Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
	KV    KV    `envPrefix:"KV_"`
}

// DB holds the relational database location.
type DB struct {
	// DSN is a SQLite file path on the client and a PostgreSQL URL on the
	// relay. An empty relay DSN selects the in-memory backend.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system locations.
type Files struct {
	// AttachmentsDir stores plaintext attachment files on the client.
	// Env: STORAGE_FILES_ATTACHMENTS_DIR
	AttachmentsDir string `env:"ATTACHMENTS_DIR"`
}

// KV holds the sync-info store location.
type KV struct {
	// Path is the bbolt file holding sync info and the cursor.
	// Env: STORAGE_KV_PATH
	Path string `env:"PATH"`
}

// Server holds inbound transport settings of the relay.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound transport settings of the client.
type Adapter struct {
	// RequestTimeout bounds every relay call. Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds scheduler settings.
type Workers struct {
	SyncInterval     time.Duration `env:"SYNC_INTERVAL"`
	FullSyncInterval time.Duration `env:"FULL_SYNC_INTERVAL"`
	CleanupInterval  time.Duration `env:"CLEANUP_INTERVAL"`
	// CleanupRetention is how long synced changelog entries are kept.
	CleanupRetention time.Duration `env:"CLEANUP_RETENTION"`
	// RetryAttempts caps retries of a job failing with a network error.
	RetryAttempts uint64 `env:"RETRY_ATTEMPTS"`
	// RetryBaseDelay is the first backoff step; it doubles per attempt.
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Sync holds optional setup values. When Server and Username are set the
// client enables sync on startup.
type Sync struct {
	Server   string `env:"SERVER"`
	Username string `env:"USERNAME"`
	Token    string `env:"TOKEN"`
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	dataDir := defaultDataDir()
	return &StructuredConfig{
		App: App{
			KeyWaitTimeout: 10 * time.Second,
			TokenIssuer:    "notes-sync-relay",
			TokenDuration:  30 * 24 * time.Hour,
			Version:        "dev",
		},
		Storage: Storage{
			DB:    DB{},
			Files: Files{AttachmentsDir: dataDir + "/attachments"},
			KV:    KV{Path: dataDir + "/sync.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{RequestTimeout: 30 * time.Second},
		Workers: Workers{
			SyncInterval:     5 * time.Minute,
			FullSyncInterval: 30 * time.Minute,
			CleanupInterval:  6 * time.Hour,
			CleanupRetention: 7 * 24 * time.Hour,
			RetryAttempts:    3,
			RetryBaseDelay:   time.Second,
		},
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".notes-sync"
	}
	return dir + "/notes-sync"
}

// GetStructuredConfig loads and merges configuration from every source.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
