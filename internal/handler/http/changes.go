// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/models"
)

// listChanges answers the entries received after the optional since query
// parameter, oldest first.
func (h *Handler) listChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listChanges").Str("since", raw).Msg("invalid since parameter")
			writeError(w, "invalid since parameter", http.StatusBadRequest)
			return
		}
		since = &parsed
	}

	entries, err := h.services.Relay.ListChanges(r.Context(), username, since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listChanges").Msg("error listing changes")
		writeError(w, "error listing changes", statusFromError(err))
		return
	}
	if entries == nil {
		entries = []models.ChangelogEntry{}
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) uploadChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	var entries []models.ChangelogEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		log.Err(err).Str("func", "*Handler.uploadChanges").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.Relay.UploadChanges(r.Context(), username, entries)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadChanges").Msg("error storing changes")
		writeError(w, "error storing changes", statusFromError(err))
		return
	}
	if h.metrics != nil {
		h.metrics.AddStoredChanges(stored)
	}

	_, _ = utils.WriteJSON(w, models.UploadChangesResponse{Stored: stored}, http.StatusCreated)
}
