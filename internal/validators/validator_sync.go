// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/go-notes-sync/models"
)

const (
	FieldID         = "id"
	FieldDeviceID   = "device_id"
	FieldSequence   = "sequence"
	FieldEntityKind = "entity_kind"
	FieldEntityID   = "entity_id"
	FieldOperation  = "operation"
	FieldPayload    = "payload"
	FieldCreatedAt  = "created_at"
	FieldEntries    = "entries"
	FieldClientID   = "client_id"
	FieldServer     = "server"
	FieldUsername   = "username"
	FieldPath       = "path"
	FieldContent    = "content"
)

// MaxBatchSize bounds a single changelog upload.
const MaxBatchSize = 1000

type SyncValidator struct{}

func NewSyncValidator() Validator {
	return &SyncValidator{}
}

func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChangelogEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.ChangelogEntry:
		return v.validateEntry(ctx, *value, fields...)

	case []models.ChangelogEntry:
		return v.validateBatch(ctx, value, fields...)

	case models.RegisterClientRequest:
		return v.validateRegisterClient(value, fields...)
	case *models.RegisterClientRequest:
		return v.validateRegisterClient(*value, fields...)

	case models.SetupRequest:
		return v.validateSetup(value, fields...)
	case *models.SetupRequest:
		return v.validateSetup(*value, fields...)

	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	case models.AttachmentMeta:
		return v.validateAttachment(value, fields...)
	case *models.AttachmentMeta:
		return v.validateAttachment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncValidator) validateEntry(_ context.Context, e models.ChangelogEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldDeviceID, FieldSequence, FieldEntityKind, FieldEntityID, FieldOperation, FieldPayload, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(e.ID) == "" {
				return ErrInvalidEntryID
			}
		case FieldDeviceID:
			if strings.TrimSpace(e.DeviceID) == "" {
				return ErrInvalidDeviceID
			}
		case FieldSequence:
			if e.Sequence <= 0 {
				return ErrInvalidSequence
			}
		case FieldEntityKind:
			if !e.EntityKind.Valid() {
				return ErrInvalidEntityKind
			}
		case FieldEntityID:
			if strings.TrimSpace(e.EntityID) == "" {
				return ErrInvalidEntityID
			}
		case FieldOperation:
			if !e.Operation.Valid() {
				return ErrInvalidOperation
			}
		case FieldPayload:
			if len(e.Payload) == 0 {
				return ErrEmptyPayload
			}
		case FieldCreatedAt:
			if e.CreatedAt.IsZero() {
				return ErrInvalidCreatedAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateBatch(ctx context.Context, entries []models.ChangelogEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntries}
	}

	for _, f := range fields {
		switch f {
		case FieldEntries:
			if len(entries) == 0 {
				return ErrEmptyEntries
			}
			if len(entries) > MaxBatchSize {
				return ErrTooManyEntries
			}
			for i, e := range entries {
				if err := v.validateEntry(ctx, e); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateRegisterClient(req models.RegisterClientRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID}
	}

	for _, f := range fields {
		switch f {
		case FieldClientID:
			if strings.TrimSpace(req.ClientID) == "" {
				return ErrInvalidClientID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateSetup(req models.SetupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServer, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldServer:
			if strings.TrimSpace(req.Server) == "" {
				return ErrInvalidServer
			}
			raw := req.Server
			if !strings.Contains(raw, "://") {
				raw = "http://" + raw
			}
			u, err := url.Parse(raw)
			if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
				return ErrInvalidServer
			}
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				return ErrInvalidUsername
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateNote(n models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(n.ID) == "" {
				return ErrInvalidNoteID
			}
		case FieldContent:
			if strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.Content) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateAttachment(a models.AttachmentMeta, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPath}
	}

	for _, f := range fields {
		switch f {
		case FieldPath:
			if !ValidAttachmentPath(a.Path) {
				return ErrInvalidPath
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidAttachmentPath reports whether p is a clean relative slash path
// that stays inside its root.
func ValidAttachmentPath(p string) bool {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return false
	}
	clean := path.Clean(p)
	return clean != "." && clean != ".." && !strings.HasPrefix(clean, "../")
}
