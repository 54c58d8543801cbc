// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{in: "Sync/init", want: ActionSyncInit},
		{in: "Sync/fetchFullDB", want: ActionSyncFetchFullDB},
		{in: "Notes/putSetting", want: ActionNotesPutSetting},
		{in: "Attachments/getData", want: ActionAttachmentsGetData},
		{in: "Scheduler/runJob", want: ActionSchedulerRunJob},
		{in: "sync/init", wantErr: true},
		{in: "Sync/", wantErr: true},
		{in: "", wantErr: true},
		{in: "Vault/unlock", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_HandleRaw(t *testing.T) {
	r := NewRegistry()
	noop := Handle[Empty, Empty]

	require.NoError(t, noop(r, ActionSyncStatus, nil))
	assert.ErrorIs(t, noop(r, ActionSyncStatus, nil), ErrHandlerExists)
	assert.ErrorIs(t, noop(r, Action("Sync/explode"), nil), ErrUnknownAction)
	assert.Equal(t, []Action{ActionSyncStatus}, r.Actions())
}
