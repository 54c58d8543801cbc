// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
)

// relayService validates requests and passes opaque data through to the
// relay repository. It never looks inside payloads.
type relayService struct {
	repository store.RelayRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewRelayService(repository store.RelayRepository, validator validators.Validator, logger *logger.Logger) RelayService {
	return &relayService{repository: repository, validator: validator, logger: logger}
}

func (s *relayService) RegisterClient(ctx context.Context, username string, req models.RegisterClientRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "relayService.RegisterClient").Msg("invalid register request")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.repository.RegisterClient(ctx, username, req.ClientID); err != nil {
		return fmt.Errorf("client registration failed: %w", err)
	}
	return nil
}

func (s *relayService) UploadChanges(ctx context.Context, username string, entries []models.ChangelogEntry) (int, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, entries); err != nil {
		log.Err(err).Str("func", "relayService.UploadChanges").Int("count", len(entries)).Msg("invalid changelog batch")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	stored, err := s.repository.StoreChanges(ctx, username, entries)
	if err != nil {
		return 0, fmt.Errorf("storing changes failed: %w", err)
	}

	log.Debug().Str("func", "relayService.UploadChanges").Int("received", len(entries)).Int("stored", stored).Msg("changes stored")
	return stored, nil
}

func (s *relayService) ListChanges(ctx context.Context, username string, since *time.Time) ([]models.ChangelogEntry, error) {
	entries, err := s.repository.ListChanges(ctx, username, since)
	if err != nil {
		return nil, fmt.Errorf("listing changes failed: %w", err)
	}
	return entries, nil
}

func (s *relayService) PutSnapshot(ctx context.Context, username string, data []byte) error {
	if len(data) == 0 {
		return ErrInvalidDataProvided
	}
	return s.repository.PutSnapshot(ctx, username, data)
}

func (s *relayService) GetSnapshot(ctx context.Context, username string) (models.RelayBlob, error) {
	return s.repository.GetSnapshot(ctx, username)
}

func (s *relayService) PutAttachment(ctx context.Context, username, path string, data []byte) error {
	if err := s.validator.Validate(ctx, models.AttachmentMeta{Path: path}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.repository.PutAttachment(ctx, username, path, data)
}

func (s *relayService) GetAttachment(ctx context.Context, username, path string) (models.RelayBlob, error) {
	if err := s.validator.Validate(ctx, models.AttachmentMeta{Path: path}); err != nil {
		return models.RelayBlob{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.repository.GetAttachment(ctx, username, path)
}
