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

// Empty is the params or result of actions that carry nothing.
type Empty struct{}

type TokenParams struct {
	Token string `json:"token"`
}

type IDParams struct {
	ID string `json:"id"`
}

type UploadParams struct {
	Path     string `json:"path"`
	MimeType string `json:"mime_type,omitempty"`
}

type PathParams struct {
	Path string `json:"path"`
}

type EventParams struct {
	Event string `json:"event"`
}

type JobParams struct {
	Name string `json:"name"`
}

// JobRunner is the part of the scheduler reachable from the foreground.
type JobRunner interface {
	Trigger(ctx context.Context, event string) (models.JobResult, error)
	RunJob(ctx context.Context, name string) (models.JobResult, error)
}

// Controllers are the background services served over the bridge.
type Controllers struct {
	Sync        service.SyncService
	Notes       service.NotesService
	Attachments service.AttachmentService
	Scheduler   JobRunner
}

// Register adds the handlers of every non-nil controller to r.
func (ctl Controllers) Register(r *Registry) error {
	var regs []func(*Registry) error
	if ctl.Sync != nil {
		regs = append(regs, syncHandlers(ctl.Sync))
	}
	if ctl.Notes != nil {
		regs = append(regs, notesHandlers(ctl.Notes))
	}
	if ctl.Attachments != nil {
		regs = append(regs, attachmentHandlers(ctl.Attachments))
	}
	if ctl.Scheduler != nil {
		regs = append(regs, schedulerHandlers(ctl.Scheduler))
	}

	for _, reg := range regs {
		if err := reg(r); err != nil {
			return err
		}
	}
	return nil
}

func syncHandlers(svc service.SyncService) func(*Registry) error {
	noParams := func(fn func(context.Context) (models.StatusInfo, error)) func(context.Context, Empty) (models.StatusInfo, error) {
		return func(ctx context.Context, _ Empty) (models.StatusInfo, error) { return fn(ctx) }
	}

	return func(r *Registry) error {
		return firstError(
			Handle(r, ActionSyncLoad, noParams(svc.Load)),
			Handle(r, ActionSyncInit, svc.Init),
			Handle(r, ActionSyncAuthenticate, func(ctx context.Context, p TokenParams) (models.StatusInfo, error) {
				return svc.Authenticate(ctx, p.Token)
			}),
			Handle(r, ActionSyncStart, noParams(svc.Start)),
			Handle(r, ActionSyncReconcile, noParams(svc.Reconcile)),
			Handle(r, ActionSyncFetchFullDB, noParams(svc.FetchFullDB)),
			Handle(r, ActionSyncUploadFullDB, noParams(svc.UploadFullDB)),
			Handle(r, ActionSyncStatus, noParams(svc.Status)),
			Handle(r, ActionSyncReset, noParams(svc.Reset)),
		)
	}
}

func notesHandlers(svc service.NotesService) func(*Registry) error {
	return func(r *Registry) error {
		return firstError(
			Handle(r, ActionNotesCreate, svc.Create),
			Handle(r, ActionNotesUpdate, svc.Update),
			Handle(r, ActionNotesDelete, func(ctx context.Context, p IDParams) (Empty, error) {
				return Empty{}, svc.Delete(ctx, p.ID)
			}),
			Handle(r, ActionNotesGet, func(ctx context.Context, p IDParams) (models.Note, error) {
				return svc.Get(ctx, p.ID)
			}),
			Handle(r, ActionNotesList, func(ctx context.Context, _ Empty) ([]models.Note, error) {
				return svc.List(ctx)
			}),
			Handle(r, ActionNotesPutTag, svc.PutTag),
			Handle(r, ActionNotesListTags, func(ctx context.Context, _ Empty) ([]models.Tag, error) {
				return svc.ListTags(ctx)
			}),
			Handle(r, ActionNotesPutSetting, func(ctx context.Context, s models.Setting) (Empty, error) {
				return Empty{}, svc.PutSetting(ctx, s)
			}),
		)
	}
}

func attachmentHandlers(svc service.AttachmentService) func(*Registry) error {
	return func(r *Registry) error {
		return firstError(
			r.HandleRaw(ActionAttachmentsUpload, func(ctx context.Context, req Request) (Result, error) {
				var p UploadParams
				if err := decodeParams(req, &p); err != nil {
					return Result{}, err
				}
				var data []byte
				if len(req.Buffers) > 0 {
					data = req.Buffers[0]
				}
				meta, err := svc.Upload(ctx, p.Path, p.MimeType, data)
				if err != nil {
					return Result{}, err
				}
				return encodeResult(meta)
			}),
			r.HandleRaw(ActionAttachmentsGetData, func(ctx context.Context, req Request) (Result, error) {
				var p PathParams
				if err := decodeParams(req, &p); err != nil {
					return Result{}, err
				}
				data, err := svc.GetData(ctx, p.Path)
				if err != nil {
					return Result{}, err
				}
				return Result{Buffers: [][]byte{data}}, nil
			}),
		)
	}
}

func schedulerHandlers(s JobRunner) func(*Registry) error {
	return func(r *Registry) error {
		return firstError(
			Handle(r, ActionSchedulerTrigger, func(ctx context.Context, p EventParams) (models.JobResult, error) {
				return s.Trigger(ctx, p.Event)
			}),
			Handle(r, ActionSchedulerRunJob, func(ctx context.Context, p JobParams) (models.JobResult, error) {
				return s.RunJob(ctx, p.Name)
			}),
		)
	}
}

func decodeParams(req Request, v any) error {
	if len(req.Params) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidParams, req.Action, err)
	}
	return nil
}

func encodeResult(v any) (Result, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Result{}, fmt.Errorf("%w: encode result: %v", ErrInternal, err)
	}
	return Result{Data: data}, nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
