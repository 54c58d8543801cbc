// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrateRelay_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db itself; every call fails unexpectedly

	err = MigrateRelay(db)
	if err == nil {
		t.Fatal("expected error from MigrateRelay, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	for _, fn := range []func(*sql.DB) error{MigrateClient, MigrateRelay} {
		err := fn(db)
		if err == nil || !strings.Contains(err.Error(), "db is nil") {
			t.Errorf("expected 'db is nil' error, got: %v", err)
		}
	}
}

func TestMigrateClient_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err := MigrateClient(db); err != nil {
		t.Fatalf("MigrateClient: %v", err)
	}
	// second run is a no-op
	if err := MigrateClient(db); err != nil {
		t.Fatalf("MigrateClient second run: %v", err)
	}

	for _, table := range []string{"entities", "changelog", "device_sequences"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestEmbeddedFiles(t *testing.T) {
	sets := []struct {
		fsys fs.FS
		dir  string
	}{
		{clientMigrations, "client"},
		{relayMigrations, "relay"},
	}
	for _, set := range sets {
		files, err := fs.Glob(set.fsys, set.dir+"/*.sql")
		if err != nil || len(files) == 0 {
			t.Errorf("no migrations embedded for %s: %v", set.dir, err)
		}
	}
}
