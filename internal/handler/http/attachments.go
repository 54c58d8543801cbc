// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

func (h *Handler) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}
	path, ok := pathFromRequest(w, r)
	if !ok {
		return
	}

	data, ok := readBody(w, r)
	if !ok {
		return
	}

	if err := h.services.Relay.PutAttachment(r.Context(), username, path, data); err != nil {
		log.Err(err).Str("func", "*Handler.uploadAttachment").Str("path", path).Msg("error storing attachment")
		writeError(w, "error storing attachment", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) downloadAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}
	path, ok := pathFromRequest(w, r)
	if !ok {
		return
	}

	blob, err := h.services.Relay.GetAttachment(r.Context(), username, path)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadAttachment").Str("path", path).Msg("error getting attachment")
		writeError(w, "error getting attachment", statusFromError(err))
		return
	}

	writeBlob(w, blob.Data)
}

func pathFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, "path parameter is required", http.StatusBadRequest)
		return "", false
	}
	return path, true
}
