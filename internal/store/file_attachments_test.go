// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

func TestFileAttachmentStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewFileAttachmentStore(root, logger.Nop())
	require.NoError(t, err)

	ok, err := s.Exists(ctx, "img/cat.png")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Get(ctx, "img/cat.png")
	assert.ErrorIs(t, err, ErrAttachmentNotFound)

	require.NoError(t, s.Put(ctx, "img/cat.png", []byte("meow")))
	require.NoError(t, s.Put(ctx, "img/cat.png", []byte("meow v2")))

	data, err := s.Get(ctx, "img/cat.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("meow v2"), data)

	onDisk, err := os.ReadFile(filepath.Join(root, "img", "cat.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("meow v2"), onDisk)

	leftovers, err := filepath.Glob(filepath.Join(root, "img", ".attachment-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)

	require.NoError(t, s.Delete(ctx, "img/cat.png"))
	require.NoError(t, s.Delete(ctx, "img/cat.png"))

	ok, err = s.Exists(ctx, "img/cat.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileAttachmentStore_RejectsEscapingPaths(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileAttachmentStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	for _, path := range []string{"", "/etc/passwd", "../outside", "a/../../outside", ".", ".."} {
		t.Run(path, func(t *testing.T) {
			assert.ErrorIs(t, s.Put(ctx, path, []byte("x")), ErrInvalidAttachmentPath)
			_, err := s.Get(ctx, path)
			assert.ErrorIs(t, err, ErrInvalidAttachmentPath)
		})
	}

	require.NoError(t, s.Put(ctx, "a/../inside.txt", []byte("ok")))
	data, err := s.Get(ctx, "inside.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), data)
}
