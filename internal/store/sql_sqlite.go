// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/migrations"
)

const sqliteDSNParams = "?_busy_timeout=5000&_foreign_keys=on"

// LocalDB is the client SQLite database. The connection can be swapped for
// a downloaded snapshot while the process keeps running; the swap waits for
// in-flight transactions and blocks new ones until the new file is open.
type LocalDB struct {
	mu   sync.RWMutex
	conn *sql.DB
	path string

	logger *logger.Logger
}

// NewConnectSQLite opens (creating if needed) the database file at path and
// applies the client migrations.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*LocalDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	conn, err := openSQLite(ctx, path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &LocalDB{conn: conn, path: path, logger: log}, nil
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path+sqliteDSNParams)
	if err != nil {
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// one writer keeps SQLite free of SQLITE_BUSY between our own goroutines
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}

	if err = migrations.MigrateClient(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return conn, nil
}

// WithTx implements [LocalDatabase].
func (db *LocalDB) WithTx(ctx context.Context, fn func(q Querier) error) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			db.logger.Err(rbErr).Str("func", "LocalDB.WithTx").Msg("rollback failed")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// View implements [LocalDatabase].
func (db *LocalDB) View(ctx context.Context, fn func(q Querier) error) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return fn(db.conn)
}

// Dir implements [LocalDatabase].
func (db *LocalDB) Dir() string {
	return filepath.Dir(db.path)
}

// SnapshotTo implements [LocalDatabase] with VACUUM INTO. path must not
// exist yet.
func (db *LocalDB) SnapshotTo(ctx context.Context, path string) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if _, err := db.conn.ExecContext(ctx, `VACUUM INTO ?`, path); err != nil {
		db.logger.Err(err).Str("func", "LocalDB.SnapshotTo").Msg("failed to write database snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Replace implements [LocalDatabase].
//
// The candidate file is opened, integrity-checked and migrated first. Only
// then is it fsynced and renamed over the live file, so a crash leaves
// either the old or the new database on disk.
func (db *LocalDB) Replace(ctx context.Context, path string) error {
	if err := validateSQLiteFile(ctx, path); err != nil {
		return err
	}
	if err := syncFile(path); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.conn.Close(); err != nil {
		db.logger.Err(err).Str("func", "LocalDB.Replace").Msg("error closing current database")
	}

	if err := os.Rename(path, db.path); err != nil {
		// keep serving the old file
		conn, openErr := openSQLite(ctx, db.path)
		if openErr != nil {
			return errors.Join(fmt.Errorf("install snapshot: %w", err), openErr)
		}
		db.conn = conn
		return fmt.Errorf("install snapshot: %w", err)
	}
	_ = os.Remove(db.path + "-journal")
	if err := syncDir(filepath.Dir(db.path)); err != nil {
		db.logger.Warn().Err(err).Str("func", "LocalDB.Replace").Msg("error syncing database directory")
	}

	conn, err := openSQLite(ctx, db.path)
	if err != nil {
		return fmt.Errorf("reopen database after install: %w", err)
	}
	db.conn = conn

	db.logger.Info().Str("func", "LocalDB.Replace").Msg("database snapshot installed")
	return nil
}

// Close closes the underlying connection.
func (db *LocalDB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.conn.Close()
}

func validateSQLiteFile(ctx context.Context, path string) error {
	conn, err := sql.Open("sqlite3", path+sqliteDSNParams)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	defer conn.Close()

	var result string
	if err = conn.QueryRowContext(ctx, `PRAGMA integrity_check`).Scan(&result); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: integrity check: %s", ErrInvalidSnapshot, result)
	}

	if err = migrations.MigrateClient(conn); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return nil
}

func syncFile(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open snapshot for sync: %w", err)
	}
	defer f.Close()

	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync snapshot: %w", err)
	}
	return nil
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()

	return d.Sync()
}
