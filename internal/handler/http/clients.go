// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

// registerClient records a device for the authenticated user. Clients send
// the body on a GET.
func (h *Handler) registerClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	var req models.RegisterClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.registerClient").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Relay.RegisterClient(ctx, username, req); err != nil {
		log.Err(err).Str("func", "*Handler.registerClient").Msg("error registering client")
		writeError(w, "error registering client", statusFromError(err))
		return
	}

	log.Info().Str("client_id", req.ClientID).Msg("client registered")
	w.WriteHeader(http.StatusCreated)
}
