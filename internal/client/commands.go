// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-notes-sync/models"
)

const (
	notesUsage  = "notes list | get <id> | add <title> [content] | edit <id> <title> [content] | rm <id>"
	tagsUsage   = "tags list | add <name>"
	attachUsage = "attach put <file> [mime-type] | get <path> <file>"
)

type command struct {
	usage string
	// accepted argument count range
	minArgs, maxArgs int
	run              func(ctx context.Context, a *App, args []string) (any, error)
}

var commands = map[string]command{
	"status": {usage: "status", run: func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.Sync.Status(ctx)
	}},
	"setup": {usage: "setup <server> <username> [token]", minArgs: 2, maxArgs: 3, run: func(ctx context.Context, a *App, args []string) (any, error) {
		req := models.SetupRequest{Server: args[0], Username: args[1]}
		if len(args) == 3 {
			req.Token = args[2]
		}
		return a.Sync.Init(ctx, req)
	}},
	"auth": {usage: "auth <token>", minArgs: 1, maxArgs: 1, run: func(ctx context.Context, a *App, args []string) (any, error) {
		return a.Sync.Authenticate(ctx, args[0])
	}},
	"sync": {usage: "sync", run: func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.Sync.Start(ctx)
	}},
	"reconcile": {usage: "reconcile", run: func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.Sync.Reconcile(ctx)
	}},
	"fetch": {usage: "fetch", run: func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.Sync.FetchFullDB(ctx)
	}},
	"upload": {usage: "upload", run: func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.Sync.UploadFullDB(ctx)
	}},
	"reset": {usage: "reset", run: func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.Sync.Reset(ctx)
	}},
	"notes": {usage: notesUsage, minArgs: 1, maxArgs: 4, run: runNotes},
	"tags":  {usage: tagsUsage, minArgs: 1, maxArgs: 2, run: runTags},
	"set": {usage: "set <key> <value>", minArgs: 2, maxArgs: 2, run: func(ctx context.Context, a *App, args []string) (any, error) {
		setting := models.Setting{Key: args[0], Value: args[1]}
		return setting, a.Notes.PutSetting(ctx, setting)
	}},
	"attach": {usage: attachUsage, minArgs: 2, maxArgs: 3, run: runAttach},
	"job": {usage: "job <sync|fullSync|cleanup>", minArgs: 1, maxArgs: 1, run: func(ctx context.Context, a *App, args []string) (any, error) {
		return a.Jobs.RunJob(ctx, args[0])
	}},
	"trigger": {usage: "trigger <online|foreground>", minArgs: 1, maxArgs: 1, run: func(ctx context.Context, a *App, args []string) (any, error) {
		return a.Jobs.Trigger(ctx, args[0])
	}},
}

// Execute runs the command in args and writes its JSON result to out. The
// app is started first so the sync state and setup are applied.
func (a *App) Execute(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: empty command", ErrUnknownCommand)
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	rest := args[1:]
	if len(rest) < cmd.minArgs || len(rest) > cmd.maxArgs {
		return fmt.Errorf("%w: usage: %s", ErrUsage, cmd.usage)
	}

	result, err := cmd.run(ctx, a, rest)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func runNotes(ctx context.Context, a *App, args []string) (any, error) {
	switch sub, rest := args[0], args[1:]; {
	case sub == "list" && len(rest) == 0:
		return a.Notes.List(ctx)
	case sub == "get" && len(rest) == 1:
		return a.Notes.Get(ctx, rest[0])
	case sub == "add" && len(rest) >= 1 && len(rest) <= 2:
		return a.Notes.Create(ctx, models.Note{Title: rest[0], Content: optional(rest, 1)})
	case sub == "edit" && len(rest) >= 2:
		existing, err := a.Notes.Get(ctx, rest[0])
		if err != nil {
			return nil, err
		}
		existing.Title = rest[1]
		existing.Content = optional(rest, 2)
		return a.Notes.Update(ctx, existing)
	case sub == "rm" && len(rest) == 1:
		return map[string]string{"deleted": rest[0]}, a.Notes.Delete(ctx, rest[0])
	default:
		return nil, fmt.Errorf("%w: usage: %s", ErrUsage, notesUsage)
	}
}

func runTags(ctx context.Context, a *App, args []string) (any, error) {
	switch {
	case args[0] == "list" && len(args) == 1:
		return a.Notes.ListTags(ctx)
	case args[0] == "add" && len(args) == 2:
		return a.Notes.PutTag(ctx, models.Tag{Name: args[1]})
	default:
		return nil, fmt.Errorf("%w: usage: %s", ErrUsage, tagsUsage)
	}
}

func runAttach(ctx context.Context, a *App, args []string) (any, error) {
	switch {
	case args[0] == "put":
		data, err := os.ReadFile(args[1])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[1], err)
		}
		mimeType := optional(args, 2)
		if mimeType == "" {
			mimeType = mime.TypeByExtension(filepath.Ext(args[1]))
		}
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		return a.Attachments.Upload(ctx, filepath.Base(args[1]), mimeType, data)
	case args[0] == "get" && len(args) == 3:
		data, err := a.Attachments.GetData(ctx, args[1])
		if err != nil {
			return nil, err
		}
		if err = os.WriteFile(args[2], data, 0o600); err != nil {
			return nil, fmt.Errorf("write %s: %w", args[2], err)
		}
		return map[string]any{"path": args[1], "file": args[2], "size": len(data)}, nil
	default:
		return nil, fmt.Errorf("%w: usage: %s", ErrUsage, attachUsage)
	}
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
