// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import "fmt"

// Action addresses a controller method as "Namespace/method".
type Action string

const (
	ActionSyncLoad         Action = "Sync/load"
	ActionSyncInit         Action = "Sync/init"
	ActionSyncAuthenticate Action = "Sync/authenticate"
	ActionSyncStart        Action = "Sync/start"
	ActionSyncReconcile    Action = "Sync/reconcile"
	ActionSyncFetchFullDB  Action = "Sync/fetchFullDB"
	ActionSyncUploadFullDB Action = "Sync/uploadFullDB"
	ActionSyncStatus       Action = "Sync/status"
	ActionSyncReset        Action = "Sync/reset"

	ActionNotesCreate     Action = "Notes/create"
	ActionNotesUpdate     Action = "Notes/update"
	ActionNotesDelete     Action = "Notes/delete"
	ActionNotesGet        Action = "Notes/get"
	ActionNotesList       Action = "Notes/list"
	ActionNotesPutTag     Action = "Notes/putTag"
	ActionNotesListTags   Action = "Notes/listTags"
	ActionNotesPutSetting Action = "Notes/putSetting"

	ActionAttachmentsUpload  Action = "Attachments/upload"
	ActionAttachmentsGetData Action = "Attachments/getData"

	ActionSchedulerTrigger Action = "Scheduler/trigger"
	ActionSchedulerRunJob  Action = "Scheduler/runJob"
)

var knownActions = map[Action]struct{}{
	ActionSyncLoad:           {},
	ActionSyncInit:           {},
	ActionSyncAuthenticate:   {},
	ActionSyncStart:          {},
	ActionSyncReconcile:      {},
	ActionSyncFetchFullDB:    {},
	ActionSyncUploadFullDB:   {},
	ActionSyncStatus:         {},
	ActionSyncReset:          {},
	ActionNotesCreate:        {},
	ActionNotesUpdate:        {},
	ActionNotesDelete:        {},
	ActionNotesGet:           {},
	ActionNotesList:          {},
	ActionNotesPutTag:        {},
	ActionNotesListTags:      {},
	ActionNotesPutSetting:    {},
	ActionAttachmentsUpload:  {},
	ActionAttachmentsGetData: {},
	ActionSchedulerTrigger:   {},
	ActionSchedulerRunJob:    {},
}

// ParseAction returns ErrUnknownAction for anything outside the closed set.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

func (a Action) Valid() bool {
	_, ok := knownActions[a]
	return ok
}
