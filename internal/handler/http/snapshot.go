// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

// downloadSnapshot answers the stored snapshot with the time it was stored
// in X-Relay-Time.
func (h *Handler) downloadSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	blob, err := h.services.Relay.GetSnapshot(r.Context(), username)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadSnapshot").Msg("error getting snapshot")
		writeError(w, "error getting snapshot", statusFromError(err))
		return
	}

	w.Header().Set(models.RelayTimeHeader, blob.UpdatedAt.UTC().Format(time.RFC3339Nano))
	writeBlob(w, blob.Data)
}

func (h *Handler) uploadSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	data, ok := readBody(w, r)
	if !ok {
		return
	}

	if err := h.services.Relay.PutSnapshot(r.Context(), username, data); err != nil {
		log.Err(err).Str("func", "*Handler.uploadSnapshot").Msg("error storing snapshot")
		writeError(w, "error storing snapshot", statusFromError(err))
		return
	}

	log.Info().Int("size", len(data)).Msg("snapshot stored")
	w.WriteHeader(http.StatusCreated)
}

func writeBlob(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
