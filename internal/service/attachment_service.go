// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-sync/internal/attachment"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
)

type attachmentService struct {
	recorder  *changeRecorder
	files     store.AttachmentFileStore
	fetcher   attachment.Getter
	uploader  attachment.Putter
	validator validators.Validator
	// syncEnabled reports whether blobs should be mirrored to the relay
	syncEnabled func() bool
	logger      *logger.Logger
}

func (s *attachmentService) Upload(ctx context.Context, path, mimeType string, data []byte) (models.AttachmentMeta, error) {
	meta := models.AttachmentMeta{
		ID:       path,
		Path:     path,
		Size:     int64(len(data)),
		MimeType: mimeType,
		SHA256:   utils.SHA256Hex(data),
	}
	if err := s.validator.Validate(ctx, meta); err != nil {
		return models.AttachmentMeta{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.files.Put(ctx, path, data); err != nil {
		return models.AttachmentMeta{}, storageError("write attachment", err)
	}

	op := models.OperationCreate
	if _, err := s.recorder.load(ctx, models.EntityKindAttachment, path); err == nil {
		op = models.OperationUpdate
	}
	if _, err := s.recorder.record(ctx, models.EntityKindAttachment, path, op, meta); err != nil {
		return models.AttachmentMeta{}, err
	}

	if !s.syncEnabled() {
		return meta, nil
	}

	if err := s.uploader.Upload(ctx, path, data); err != nil {
		s.logger.Err(err).Str("func", "attachmentService.Upload").Str("path", path).Msg("attachment kept locally, upload failed")
		return meta, err
	}
	return meta, nil
}

func (s *attachmentService) GetData(ctx context.Context, path string) ([]byte, error) {
	if !validators.ValidAttachmentPath(path) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidPath)
	}

	data, err := s.files.Get(ctx, path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, store.ErrAttachmentNotFound) {
		return nil, storageError("read attachment", err)
	}

	if !s.syncEnabled() {
		return nil, fmt.Errorf("attachment %q: %w", path, ErrNotFound)
	}

	data, err = s.fetcher.GetAttachmentData(ctx, path)
	if err != nil {
		return nil, err
	}
	if err = s.verify(ctx, path, data); err != nil {
		return nil, err
	}

	if putErr := s.files.Put(ctx, path, data); putErr != nil {
		s.logger.Warn().Err(putErr).Str("path", path).Msg("failed to cache fetched attachment")
	}
	return data, nil
}

// verify checks fetched bytes against the recorded meta. Blobs whose meta
// has not been pulled yet are taken as is.
func (s *attachmentService) verify(ctx context.Context, path string, data []byte) error {
	entity, err := s.recorder.load(ctx, models.EntityKindAttachment, path)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	meta, err := decodeBody[models.AttachmentMeta](entity)
	if err != nil {
		return storageError("decode attachment meta", err)
	}
	if meta.SHA256 == "" || meta.SHA256 == utils.SHA256Hex(data) {
		return nil
	}

	s.logger.Warn().Str("func", "attachmentService.verify").Str("path", path).Msg("fetched attachment does not match its checksum")
	return fmt.Errorf("attachment %q: %w", path, ErrChecksumMismatch)
}
