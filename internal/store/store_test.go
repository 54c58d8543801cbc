// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

func newTestLocalDB(t *testing.T) *LocalDB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "notes.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// prefixCipher is a reversible stand-in for the key ring.
type prefixCipher struct {
	locked bool
}

var cipherPrefix = []byte("sealed:")

func (c *prefixCipher) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	if c.locked {
		return nil, crypto.ErrKeyUnavailable
	}
	return append(append([]byte{}, cipherPrefix...), plaintext...), nil
}

func (c *prefixCipher) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	if c.locked {
		return nil, crypto.ErrKeyUnavailable
	}
	if !bytes.HasPrefix(ciphertext, cipherPrefix) {
		return nil, errors.New("bad ciphertext")
	}
	return bytes.Clone(ciphertext[len(cipherPrefix):]), nil
}
