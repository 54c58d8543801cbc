// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
)

type notesService struct {
	recorder  *changeRecorder
	validator validators.Validator
	noteIDs   IDGenerator
	notifier  Notifier
	logger    *logger.Logger
}

func (s *notesService) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if note.ID == "" {
		note.ID = s.noteIDs.Generate()
	}
	if err := s.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.recorder.now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	if _, err := s.recorder.record(ctx, models.EntityKindNote, note.ID, models.OperationCreate, note); err != nil {
		s.logger.Err(err).Str("func", "notesService.Create").Str("note_id", note.ID).Msg("failed to create note")
		return models.Note{}, err
	}

	s.notifier.Notify(ctx, NotifyNoteCreated, note)
	return note, nil
}

func (s *notesService) Update(ctx context.Context, note models.Note) (models.Note, error) {
	if err := s.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	existing, err := s.Get(ctx, note.ID)
	if err != nil {
		return models.Note{}, err
	}

	note.CreatedAt = existing.CreatedAt
	note.UpdatedAt = s.recorder.now().UTC()

	if _, err = s.recorder.record(ctx, models.EntityKindNote, note.ID, models.OperationUpdate, note); err != nil {
		s.logger.Err(err).Str("func", "notesService.Update").Str("note_id", note.ID).Msg("failed to update note")
		return models.Note{}, err
	}

	s.notifier.Notify(ctx, NotifyNoteUpdated, note)
	return note, nil
}

func (s *notesService) Delete(ctx context.Context, id string) error {
	if _, err := s.recorder.load(ctx, models.EntityKindNote, id); err != nil {
		return err
	}

	if _, err := s.recorder.record(ctx, models.EntityKindNote, id, models.OperationDelete, nil); err != nil {
		s.logger.Err(err).Str("func", "notesService.Delete").Str("note_id", id).Msg("failed to delete note")
		return err
	}

	s.notifier.Notify(ctx, NotifyNoteDeleted, map[string]string{"id": id})
	return nil
}

func (s *notesService) Get(ctx context.Context, id string) (models.Note, error) {
	if strings.TrimSpace(id) == "" {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidNoteID)
	}

	entity, err := s.recorder.load(ctx, models.EntityKindNote, id)
	if err != nil {
		return models.Note{}, err
	}
	return decodeBody[models.Note](entity)
}

func (s *notesService) List(ctx context.Context) ([]models.Note, error) {
	entities, err := s.recorder.list(ctx, models.EntityKindNote)
	if err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0, len(entities))
	for _, e := range entities {
		note, decodeErr := decodeBody[models.Note](e)
		if decodeErr != nil {
			s.logger.Warn().Err(decodeErr).Str("note_id", e.ID).Msg("skipping unreadable note")
			continue
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func (s *notesService) PutTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	if strings.TrimSpace(tag.Name) == "" {
		return models.Tag{}, ErrInvalidDataProvided
	}

	op := models.OperationUpdate
	if tag.ID == "" {
		tag.ID = s.noteIDs.Generate()
		op = models.OperationCreate
	}

	if _, err := s.recorder.record(ctx, models.EntityKindTag, tag.ID, op, tag); err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

func (s *notesService) ListTags(ctx context.Context) ([]models.Tag, error) {
	entities, err := s.recorder.list(ctx, models.EntityKindTag)
	if err != nil {
		return nil, err
	}

	tags := make([]models.Tag, 0, len(entities))
	for _, e := range entities {
		tag, decodeErr := decodeBody[models.Tag](e)
		if decodeErr != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// PutSetting stores a setting keyed by its name, so the same setting
// changed on two devices resolves by last writer.
func (s *notesService) PutSetting(ctx context.Context, setting models.Setting) error {
	if strings.TrimSpace(setting.Key) == "" {
		return ErrInvalidDataProvided
	}

	_, err := s.recorder.record(ctx, models.EntityKindSetting, setting.Key, models.OperationUpdate, setting)
	return err
}

func decodeBody[T any](entity models.Entity) (T, error) {
	var v T
	if err := json.Unmarshal(entity.Body, &v); err != nil {
		return v, fmt.Errorf("decode %s %q: %w", entity.Kind, entity.ID, err)
	}
	return v, nil
}
