// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

// FileAttachmentStore stores decrypted attachments under a root directory,
// addressed by their relative path.
type FileAttachmentStore struct {
	root   string
	logger *logger.Logger
}

func NewFileAttachmentStore(root string, log *logger.Logger) (*FileAttachmentStore, error) {
	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create attachments directory: %w", err)
	}
	return &FileAttachmentStore{root: root, logger: log}, nil
}

// Put writes data atomically: readers see either the old file or the new
// one, never a partial write.
func (s *FileAttachmentStore) Put(_ context.Context, path string, data []byte) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(full)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create attachment directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".attachment-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write attachment: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync attachment: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close attachment: %w", err)
	}

	if err = os.Rename(tmpName, full); err != nil {
		s.logger.Err(err).Str("func", "FileAttachmentStore.Put").Str("path", path).Msg("failed to install attachment")
		return fmt.Errorf("failed to install attachment: %w", err)
	}
	return nil
}

func (s *FileAttachmentStore) Get(_ context.Context, path string) ([]byte, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrAttachmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	return data, nil
}

func (s *FileAttachmentStore) Exists(_ context.Context, path string) (bool, error) {
	full, err := s.resolve(path)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat attachment: %w", err)
	}
	return true, nil
}

// Delete is a no-op for missing files.
func (s *FileAttachmentStore) Delete(_ context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err = os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

func (s *FileAttachmentStore) resolve(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidAttachmentPath, path)
	}

	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAttachmentPath, path)
	}
	return filepath.Join(s.root, clean), nil
}
