// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/models"
)

var (
	_ service.NotesService      = (*NotesStub)(nil)
	_ service.AttachmentService = (*AttachmentsStub)(nil)
	_ JobRunner                 = (*SchedulerStub)(nil)
)

// SyncStub calls the sync controller.
type SyncStub struct{ c *Client }

func NewSyncStub(c *Client) *SyncStub { return &SyncStub{c: c} }

func (s *SyncStub) Load(ctx context.Context) (models.StatusInfo, error) {
	return Call[Empty, models.StatusInfo](ctx, s.c, ActionSyncLoad, Empty{})
}

func (s *SyncStub) Init(ctx context.Context, req models.SetupRequest) (models.StatusInfo, error) {
	return Call[models.SetupRequest, models.StatusInfo](ctx, s.c, ActionSyncInit, req)
}

func (s *SyncStub) Authenticate(ctx context.Context, token string) (models.StatusInfo, error) {
	return Call[TokenParams, models.StatusInfo](ctx, s.c, ActionSyncAuthenticate, TokenParams{Token: token})
}

func (s *SyncStub) Start(ctx context.Context) (models.StatusInfo, error) {
	return Call[Empty, models.StatusInfo](ctx, s.c, ActionSyncStart, Empty{})
}

func (s *SyncStub) Reconcile(ctx context.Context) (models.StatusInfo, error) {
	return Call[Empty, models.StatusInfo](ctx, s.c, ActionSyncReconcile, Empty{})
}

func (s *SyncStub) FetchFullDB(ctx context.Context) (models.StatusInfo, error) {
	return Call[Empty, models.StatusInfo](ctx, s.c, ActionSyncFetchFullDB, Empty{})
}

func (s *SyncStub) UploadFullDB(ctx context.Context) (models.StatusInfo, error) {
	return Call[Empty, models.StatusInfo](ctx, s.c, ActionSyncUploadFullDB, Empty{})
}

func (s *SyncStub) Status(ctx context.Context) (models.StatusInfo, error) {
	return Call[Empty, models.StatusInfo](ctx, s.c, ActionSyncStatus, Empty{})
}

func (s *SyncStub) Reset(ctx context.Context) (models.StatusInfo, error) {
	return Call[Empty, models.StatusInfo](ctx, s.c, ActionSyncReset, Empty{})
}

// NotesStub calls the notes controller.
type NotesStub struct{ c *Client }

func NewNotesStub(c *Client) *NotesStub { return &NotesStub{c: c} }

func (s *NotesStub) Create(ctx context.Context, note models.Note) (models.Note, error) {
	return Call[models.Note, models.Note](ctx, s.c, ActionNotesCreate, note)
}

func (s *NotesStub) Update(ctx context.Context, note models.Note) (models.Note, error) {
	return Call[models.Note, models.Note](ctx, s.c, ActionNotesUpdate, note)
}

func (s *NotesStub) Delete(ctx context.Context, id string) error {
	_, err := Call[IDParams, Empty](ctx, s.c, ActionNotesDelete, IDParams{ID: id})
	return err
}

func (s *NotesStub) Get(ctx context.Context, id string) (models.Note, error) {
	return Call[IDParams, models.Note](ctx, s.c, ActionNotesGet, IDParams{ID: id})
}

func (s *NotesStub) List(ctx context.Context) ([]models.Note, error) {
	return Call[Empty, []models.Note](ctx, s.c, ActionNotesList, Empty{})
}

func (s *NotesStub) PutTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	return Call[models.Tag, models.Tag](ctx, s.c, ActionNotesPutTag, tag)
}

func (s *NotesStub) ListTags(ctx context.Context) ([]models.Tag, error) {
	return Call[Empty, []models.Tag](ctx, s.c, ActionNotesListTags, Empty{})
}

func (s *NotesStub) PutSetting(ctx context.Context, setting models.Setting) error {
	_, err := Call[models.Setting, Empty](ctx, s.c, ActionNotesPutSetting, setting)
	return err
}

// AttachmentsStub calls the attachments controller. Data buffers are
// handed over, not copied.
type AttachmentsStub struct{ c *Client }

func NewAttachmentsStub(c *Client) *AttachmentsStub { return &AttachmentsStub{c: c} }

func (s *AttachmentsStub) Upload(ctx context.Context, path, mimeType string, data []byte) (models.AttachmentMeta, error) {
	var meta models.AttachmentMeta

	res, err := s.c.Do(ctx, ActionAttachmentsUpload, UploadParams{Path: path, MimeType: mimeType}, [][]byte{data})
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(res.Data, &meta); err != nil {
		return meta, fmt.Errorf("%w: decode upload result: %v", ErrInternal, err)
	}
	return meta, nil
}

func (s *AttachmentsStub) GetData(ctx context.Context, path string) ([]byte, error) {
	res, err := s.c.Do(ctx, ActionAttachmentsGetData, PathParams{Path: path}, nil)
	if err != nil {
		return nil, err
	}
	if len(res.Buffers) == 0 {
		return []byte{}, nil
	}
	return res.Buffers[0], nil
}

// SchedulerStub calls the background scheduler.
type SchedulerStub struct{ c *Client }

func NewSchedulerStub(c *Client) *SchedulerStub { return &SchedulerStub{c: c} }

func (s *SchedulerStub) Trigger(ctx context.Context, event string) (models.JobResult, error) {
	return Call[EventParams, models.JobResult](ctx, s.c, ActionSchedulerTrigger, EventParams{Event: event})
}

func (s *SchedulerStub) RunJob(ctx context.Context, name string) (models.JobResult, error) {
	return Call[JobParams, models.JobResult](ctx, s.c, ActionSchedulerRunJob, JobParams{Name: name})
}
